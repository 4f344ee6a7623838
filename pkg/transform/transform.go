// Package transform 提供按固定顺序组合的文本清洗与去隐私算子。
// 每个算子都是纯函数：输入文本，输出清洗后的文本与变更明细，
// 不感知任务/数据库等上层概念。
package transform

import (
	"github.com/dataprep-ai/dataprep/pkg/types"
)

// Span 一处被算子改写的内容，pre/post 用于审计落库
type Span struct {
	Pre  string
	Post string
}

// Result 算子执行结果。Whole 为 true 的算子（乱码修复、繁转简、去HTML）
// 不逐段记录，Found > 0 时由调用方记录一条整体 before/after。
type Result struct {
	Text  string
	Found int
	Spans []Span
	Whole bool
}

// Transform 单个文本算子
type Transform interface {
	Type() string
	Apply(text string) (Result, error)
}

type constructor func() Transform

// registry 全部算子的构造函数，key 为算子类型名
var registry = map[string]constructor{
	types.TRANSFORM_REMOVE_INVISIBLE_CHARACTERS: func() Transform { return &InvisibleCharacterCleaner{} },
	types.TRANSFORM_SPACE_STANDARDIZATION:       func() Transform { return &SpaceStandardizer{} },
	types.TRANSFORM_REMOVE_GARBLED_TEXT:         func() Transform { return &GarbledTextCleaner{} },
	types.TRANSFORM_TRADITIONAL_TO_SIMPLIFIED:   func() Transform { return &TraditionalToSimplified{} },
	types.TRANSFORM_REMOVE_HTML_TAG:             func() Transform { return &HTMLTagCleaner{} },
	types.TRANSFORM_REMOVE_EMOJIS:               func() Transform { return &EmojiCleaner{} },
	types.TRANSFORM_REMOVE_EMAIL:                func() Transform { return &EmailScrubber{} },
	types.TRANSFORM_REMOVE_IP_ADDRESS:           func() Transform { return &IPAddressScrubber{} },
	types.TRANSFORM_REMOVE_NUMBER:               func() Transform { return &NumberScrubber{} },
}

// Pipeline 已按固定顺序展开的算子集合。配置列表中的顺序不影响执行顺序，
// 这里只决定启用哪些算子。
type Pipeline struct {
	Clean   []Transform
	Privacy []Transform
}

// NewPipeline 根据任务配置构建算子流水线
func NewPipeline(options []types.TransformOption) *Pipeline {
	enabled := make(map[string]struct{}, len(options))
	for _, opt := range options {
		enabled[opt.Type] = struct{}{}
	}

	p := &Pipeline{}
	for _, name := range types.CleanTransformOrder {
		if _, ok := enabled[name]; ok {
			p.Clean = append(p.Clean, registry[name]())
		}
	}
	for _, name := range types.PrivacyTransformOrder {
		if _, ok := enabled[name]; ok {
			p.Privacy = append(p.Privacy, registry[name]())
		}
	}
	return p
}

// All clean 组在前、privacy 组在后的全量算子序列
func (p *Pipeline) All() []Transform {
	all := make([]Transform, 0, len(p.Clean)+len(p.Privacy))
	all = append(all, p.Clean...)
	all = append(all, p.Privacy...)
	return all
}

// lineSpans 按行应用 rewrite，返回重写后的文本与所有发生变化的行。
// 逐段审计的算子共用这套行级 diff。
func lineSpans(text string, rewrite func(line string) string) (string, []Span) {
	var (
		spans []Span
		out   []byte
		start int
	)

	flush := func(line string) {
		cleaned := rewrite(line)
		if cleaned != line {
			spans = append(spans, Span{Pre: line, Post: cleaned})
		}
		out = append(out, cleaned...)
	}

	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			flush(text[start:i])
			out = append(out, '\n')
			start = i + 1
		}
	}
	flush(text[start:])

	return string(out), spans
}
