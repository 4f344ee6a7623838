package types

// 支持的算子类型。clean 与 privacy 两组算子按固定顺序执行：后面的算子
// 假定前面的算子已经完成了空白/编码归一化。
const (
	TRANSFORM_REMOVE_INVISIBLE_CHARACTERS = "remove_invisible_characters"
	TRANSFORM_SPACE_STANDARDIZATION       = "space_standardization"
	TRANSFORM_REMOVE_GARBLED_TEXT         = "remove_garbled_text"
	TRANSFORM_TRADITIONAL_TO_SIMPLIFIED   = "traditional_to_simplified"
	TRANSFORM_REMOVE_HTML_TAG             = "remove_html_tag"
	TRANSFORM_REMOVE_EMOJIS               = "remove_emojis"

	TRANSFORM_REMOVE_EMAIL      = "remove_email"
	TRANSFORM_REMOVE_IP_ADDRESS = "remove_ip_address"
	TRANSFORM_REMOVE_NUMBER     = "remove_number"

	TRANSFORM_QA_SPLIT = "qa_split"
)

// CleanTransformOrder clean 组算子的固定执行顺序
var CleanTransformOrder = []string{
	TRANSFORM_REMOVE_INVISIBLE_CHARACTERS,
	TRANSFORM_SPACE_STANDARDIZATION,
	TRANSFORM_REMOVE_GARBLED_TEXT,
	TRANSFORM_TRADITIONAL_TO_SIMPLIFIED,
	TRANSFORM_REMOVE_HTML_TAG,
	TRANSFORM_REMOVE_EMOJIS,
}

// PrivacyTransformOrder privacy 组算子的固定执行顺序
var PrivacyTransformOrder = []string{
	TRANSFORM_REMOVE_EMAIL,
	TRANSFORM_REMOVE_IP_ADDRESS,
	TRANSFORM_REMOVE_NUMBER,
}

// TransformOption 任务配置里的一项，顺序由配置方给出但执行顺序固定
type TransformOption struct {
	Type      string     `json:"type"`
	LLMConfig *LLMConfig `json:"llm_config,omitempty"`
}

// LLMProvider QA 拆分的两种供给方式
type LLMProvider string

const (
	LLM_PROVIDER_WORKER LLMProvider = "worker" // 平台内模型服务，openai 兼容端点
	LLM_PROVIDER_ZHIPU  LLMProvider = "zhipu"  // 第三方在线服务
)

// LLMConfig qa_split 选项携带的模型配置
type LLMConfig struct {
	Name                string      `json:"name"`
	Namespace           string      `json:"namespace"`
	Provider            LLMProvider `json:"provider"`
	Model               string      `json:"model"`
	BaseURL             string      `json:"base_url,omitempty"`
	APIKey              string      `json:"api_key,omitempty"`
	PromptTemplate      string      `json:"prompt_template,omitempty"`
	Temperature         float32     `json:"temperature,omitempty"`
	TopP                float32     `json:"top_p,omitempty"`
	MaxTokens           int         `json:"max_tokens,omitempty"`
	ChunkSize           int         `json:"chunk_size,omitempty"`
	ChunkOverlap        int         `json:"chunk_overlap,omitempty"`
	RemoveDuplicate     bool        `json:"remove_duplicate,omitempty"`
	SimilarityThreshold float64     `json:"similarity_threshold,omitempty"`
}

// SupportType /support-types 接口返回的算子说明
type SupportType struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Children    []SupportItem `json:"children"`
}

type SupportItem struct {
	Name        string `json:"name"`
	ZhName      string `json:"zh_name"`
	Description string `json:"description"`
}

var SupportTypes = []SupportType{
	{
		Name:        "clean",
		Description: "异常清洗",
		Children: []SupportItem{
			{Name: TRANSFORM_REMOVE_INVISIBLE_CHARACTERS, ZhName: "移除不可见字符", Description: "移除ASCII中的一些不可见字符, 如0-32 和127-160这两个范围"},
			{Name: TRANSFORM_SPACE_STANDARDIZATION, ZhName: "规范化空格", Description: "将不同的unicode空格比如u2008, 转成正常的空格"},
			{Name: TRANSFORM_REMOVE_GARBLED_TEXT, ZhName: "去除乱码", Description: "去除乱码和无意义的unicode"},
			{Name: TRANSFORM_TRADITIONAL_TO_SIMPLIFIED, ZhName: "繁体转简体", Description: "繁体转简体，如“不經意，妳的笑容”清洗成“不经意，你的笑容”"},
			{Name: TRANSFORM_REMOVE_HTML_TAG, ZhName: "去除网页标识符", Description: "移除文档中的html标签, 如<html>,<dev>,<p>等"},
			{Name: TRANSFORM_REMOVE_EMOJIS, ZhName: "去除表情", Description: "去除文档中的表情，如‘🐰’, ‘🧑🏼’等"},
		},
	},
	{
		Name:        "privacy_erosion",
		Description: "去隐私",
		Children: []SupportItem{
			{Name: TRANSFORM_REMOVE_EMAIL, ZhName: "去除邮箱", Description: "去除email地址"},
			{Name: TRANSFORM_REMOVE_IP_ADDRESS, ZhName: "去除IP地址", Description: "去除IPv4 或者 IPv6 地址"},
			{Name: TRANSFORM_REMOVE_NUMBER, ZhName: "去除数字", Description: "去除电话号码、身份证号、银行卡号等数字标识符"},
		},
	},
}
