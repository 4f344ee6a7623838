package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataprep-ai/dataprep/pkg/types"
)

func TestInvisibleCharacterCleaner(t *testing.T) {
	tr := &InvisibleCharacterCleaner{}
	res, err := tr.Apply("hello​world\nsecond­line")
	require.NoError(t, err)
	assert.Equal(t, "helloworld\nsecondline", res.Text)
	assert.Equal(t, 2, res.Found)
	require.Len(t, res.Spans, 2)
	assert.Equal(t, "hello​world", res.Spans[0].Pre)
	assert.Equal(t, "helloworld", res.Spans[0].Post)
}

func TestInvisibleCharacterCleanerKeepsCleanLines(t *testing.T) {
	tr := &InvisibleCharacterCleaner{}
	res, err := tr.Apply("nothing to do here\nat all")
	require.NoError(t, err)
	assert.Equal(t, "nothing to do here\nat all", res.Text)
	assert.Zero(t, res.Found)
	assert.Empty(t, res.Spans)
}

func TestSpaceStandardizer(t *testing.T) {
	tr := &SpaceStandardizer{}
	res, err := tr.Apply("全角　空格 and nbsp")
	require.NoError(t, err)
	assert.Equal(t, "全角 空格 and nbsp", res.Text)
	assert.Equal(t, 1, res.Found)
}

func TestGarbledTextCleaner(t *testing.T) {
	tr := &GarbledTextCleaner{}
	res, err := tr.Apply("oktext�end")
	require.NoError(t, err)
	assert.Equal(t, "oktextend", res.Text)
	assert.Equal(t, 2, res.Found)
	assert.True(t, res.Whole)
	assert.Empty(t, res.Spans)
}

func TestTraditionalToSimplified(t *testing.T) {
	tr := &TraditionalToSimplified{}
	res, err := tr.Apply("繁體中文轉換測試")
	require.NoError(t, err)
	assert.Equal(t, "繁体中文转换测试", res.Text)
	assert.Equal(t, 5, res.Found)
	assert.True(t, res.Whole)
}

func TestHTMLTagCleaner(t *testing.T) {
	tr := &HTMLTagCleaner{}
	res, err := tr.Apply("<div><p>first</p><p>second</p></div>")
	require.NoError(t, err)
	assert.Equal(t, "firstsecond", res.Text)
	assert.Equal(t, 1, res.Found)
	assert.True(t, res.Whole)

	res, err = tr.Apply("plain text, 1 < 2 is fine without tags")
	require.NoError(t, err)
	assert.Zero(t, res.Found)
}

func TestEmojiCleaner(t *testing.T) {
	tr := &EmojiCleaner{}
	res, err := tr.Apply("hello 😀🎉 world\nno emoji")
	require.NoError(t, err)
	assert.Equal(t, "hello  world\nno emoji", res.Text)
	assert.Equal(t, 1, res.Found)
}

func TestEmailScrubber(t *testing.T) {
	tr := &EmailScrubber{}
	res, err := tr.Apply("contact alice@example.com or bob.smith+tag@mail.co.uk")
	require.NoError(t, err)
	assert.Equal(t, "contact PI:EMAIL or PI:EMAIL", res.Text)
	assert.Equal(t, 1, res.Found)
	require.Len(t, res.Spans, 1)
	assert.Contains(t, res.Spans[0].Pre, "alice@example.com")
}

func TestIPAddressScrubber(t *testing.T) {
	tr := &IPAddressScrubber{}
	res, err := tr.Apply("server at 192.168.1.10 and fe80:0:0:0:0:0:0:1")
	require.NoError(t, err)
	assert.Equal(t, "server at PI:IP and PI:IP", res.Text)
}

func TestNumberScrubber(t *testing.T) {
	tr := &NumberScrubber{}

	res, err := tr.Apply("电话 13812345678，身份证 110101199001011237")
	require.NoError(t, err)
	assert.Equal(t, "电话 PI:NUMBER，身份证 PI:NUMBER", res.Text)

	res, err = tr.Apply("微信号: my_wechat01 联系")
	require.NoError(t, err)
	assert.Equal(t, "PI:NUMBER 联系", res.Text)
}

func TestNewPipelineFixedOrder(t *testing.T) {
	// 配置顺序打乱，流水线仍按固定顺序执行
	p := NewPipeline([]types.TransformOption{
		{Type: types.TRANSFORM_REMOVE_EMAIL},
		{Type: types.TRANSFORM_REMOVE_HTML_TAG},
		{Type: types.TRANSFORM_REMOVE_INVISIBLE_CHARACTERS},
		{Type: types.TRANSFORM_REMOVE_IP_ADDRESS},
	})

	require.Len(t, p.Clean, 2)
	assert.Equal(t, types.TRANSFORM_REMOVE_INVISIBLE_CHARACTERS, p.Clean[0].Type())
	assert.Equal(t, types.TRANSFORM_REMOVE_HTML_TAG, p.Clean[1].Type())

	require.Len(t, p.Privacy, 2)
	assert.Equal(t, types.TRANSFORM_REMOVE_EMAIL, p.Privacy[0].Type())
	assert.Equal(t, types.TRANSFORM_REMOVE_IP_ADDRESS, p.Privacy[1].Type())

	all := p.All()
	require.Len(t, all, 4)
	assert.Equal(t, types.TRANSFORM_REMOVE_INVISIBLE_CHARACTERS, all[0].Type())
	assert.Equal(t, types.TRANSFORM_REMOVE_IP_ADDRESS, all[3].Type())
}

func TestNewPipelineIgnoresUnknownTypes(t *testing.T) {
	p := NewPipeline([]types.TransformOption{
		{Type: "qa_split"},
		{Type: types.TRANSFORM_SPACE_STANDARDIZATION},
	})
	require.Len(t, p.Clean, 1)
	assert.Empty(t, p.Privacy)
}
