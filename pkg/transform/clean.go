package transform

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/dataprep-ai/dataprep/pkg/types"
)

// invisiblePattern ASCII 控制字符与软连字符等不可见字符（不含换行，
// 换行由行级 diff 保留）
var invisiblePattern = regexp.MustCompile(`[\x00-\x09\x0B-\x1F\x7F\x{0080}-\x{009F}\x{00AD}\x{200B}-\x{200F}\x{FEFF}]`)

// InvisibleCharacterCleaner 移除不可见字符
type InvisibleCharacterCleaner struct{}

func (t *InvisibleCharacterCleaner) Type() string {
	return types.TRANSFORM_REMOVE_INVISIBLE_CHARACTERS
}

func (t *InvisibleCharacterCleaner) Apply(text string) (Result, error) {
	cleaned, spans := lineSpans(text, func(line string) string {
		return invisiblePattern.ReplaceAllString(line, "")
	})
	return Result{Text: cleaned, Found: len(spans), Spans: spans}, nil
}

// unicodeSpacePattern 各类 unicode 空格（u2000-u200A、u00A0、u3000 等）
var unicodeSpacePattern = regexp.MustCompile(`[\x{00A0}\x{1680}\x{2000}-\x{200A}\x{202F}\x{205F}\x{3000}]`)

// SpaceStandardizer 将 unicode 空格统一为普通空格
type SpaceStandardizer struct{}

func (t *SpaceStandardizer) Type() string {
	return types.TRANSFORM_SPACE_STANDARDIZATION
}

func (t *SpaceStandardizer) Apply(text string) (Result, error) {
	cleaned, spans := lineSpans(text, func(line string) string {
		return unicodeSpacePattern.ReplaceAllString(line, " ")
	})
	return Result{Text: cleaned, Found: len(spans), Spans: spans}, nil
}

// GarbledTextCleaner 去除乱码与无意义的 unicode：替换符、私有区字符、
// 未配对代理区字符。整体性算子，Found 为移除的字符数。
type GarbledTextCleaner struct{}

func (t *GarbledTextCleaner) Type() string {
	return types.TRANSFORM_REMOVE_GARBLED_TEXT
}

func (t *GarbledTextCleaner) Apply(text string) (Result, error) {
	var (
		b     strings.Builder
		found int
	)
	b.Grow(len(text))

	for _, r := range text {
		if isGarbledRune(r) {
			found++
			continue
		}
		b.WriteRune(r)
	}

	return Result{Text: b.String(), Found: found, Whole: true}, nil
}

func isGarbledRune(r rune) bool {
	switch {
	case r == utf8.RuneError:
		return true
	case r >= 0xE000 && r <= 0xF8FF: // 私有区
		return true
	case r >= 0xFFF0 && r <= 0xFFFF: // specials 区
		return true
	case r >= 0xD800 && r <= 0xDFFF: // 未配对代理
		return true
	}
	return false
}

// TraditionalToSimplified 繁体转简体。整体性算子，Found 为转换的字数。
type TraditionalToSimplified struct{}

func (t *TraditionalToSimplified) Type() string {
	return types.TRANSFORM_TRADITIONAL_TO_SIMPLIFIED
}

func (t *TraditionalToSimplified) Apply(text string) (Result, error) {
	var (
		b     strings.Builder
		found int
	)
	b.Grow(len(text))

	for _, r := range text {
		if s, ok := t2sTable[r]; ok {
			b.WriteRune(s)
			found++
			continue
		}
		b.WriteRune(r)
	}

	return Result{Text: b.String(), Found: found, Whole: true}, nil
}

// HTMLTagCleaner 去除文本中的 html 标签，保留纯文本。整体性算子。
type HTMLTagCleaner struct{}

func (t *HTMLTagCleaner) Type() string {
	return types.TRANSFORM_REMOVE_HTML_TAG
}

func (t *HTMLTagCleaner) Apply(text string) (Result, error) {
	if !strings.ContainsRune(text, '<') {
		return Result{Text: text, Whole: true}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return Result{Text: text, Whole: true}, err
	}

	cleaned := strings.TrimSpace(doc.Text())
	found := 0
	if cleaned != text {
		found = 1
	}
	return Result{Text: cleaned, Found: found, Whole: true}, nil
}

// emojiPattern 常见 emoji 区段，包括变体选择符与連接符
var emojiPattern = regexp.MustCompile(`[\x{1F000}-\x{1FAFF}\x{2600}-\x{27BF}\x{FE0F}\x{200D}\x{1F1E6}-\x{1F1FF}]+`)

// EmojiCleaner 去除表情符号
type EmojiCleaner struct{}

func (t *EmojiCleaner) Type() string {
	return types.TRANSFORM_REMOVE_EMOJIS
}

func (t *EmojiCleaner) Apply(text string) (Result, error) {
	cleaned, spans := lineSpans(text, func(line string) string {
		return emojiPattern.ReplaceAllString(line, "")
	})
	return Result{Text: cleaned, Found: len(spans), Spans: spans}, nil
}
