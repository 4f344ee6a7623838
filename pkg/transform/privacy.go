package transform

import (
	"regexp"

	"github.com/dataprep-ai/dataprep/pkg/types"
)

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+(\.[a-zA-Z0-9-]+)+`)

// EmailScrubber 将邮箱地址替换为 PI:EMAIL
type EmailScrubber struct{}

func (t *EmailScrubber) Type() string {
	return types.TRANSFORM_REMOVE_EMAIL
}

func (t *EmailScrubber) Apply(text string) (Result, error) {
	cleaned, spans := lineSpans(text, func(line string) string {
		return emailPattern.ReplaceAllString(line, "PI:EMAIL")
	})
	return Result{Text: cleaned, Found: len(spans), Spans: spans}, nil
}

var (
	ipv4Pattern = regexp.MustCompile(`((25[0-5]|2[0-4]\d|[01]?\d?\d)\.){3}(25[0-5]|2[0-4]\d|[01]?\d?\d)`)
	ipv6Pattern = regexp.MustCompile(`([0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}|([0-9a-fA-F]{1,4}:){1,7}:|:(:[0-9a-fA-F]{1,4}){1,7}`)
)

// IPAddressScrubber 将 IPv4/IPv6 地址替换为 PI:IP
type IPAddressScrubber struct{}

func (t *IPAddressScrubber) Type() string {
	return types.TRANSFORM_REMOVE_IP_ADDRESS
}

func (t *IPAddressScrubber) Apply(text string) (Result, error) {
	cleaned, spans := lineSpans(text, func(line string) string {
		line = ipv4Pattern.ReplaceAllString(line, "PI:IP")
		return ipv6Pattern.ReplaceAllString(line, "PI:IP")
	})
	return Result{Text: cleaned, Found: len(spans), Spans: spans}, nil
}

// 号码类隐私按序多轮替换。身份证在手机号之前，避免 18 位号码
// 被手机号规则截断成两段。
var numberPatterns = []*regexp.Regexp{
	// 身份证号
	regexp.MustCompile(`[1-9]\d{5}(18|19|20)\d{2}(0[1-9]|1[0-2])(0[1-9]|[12]\d|3[01])\d{3}[\dXx]`),
	// 银行卡号
	regexp.MustCompile(`62\d{14,17}`),
	// 手机号，兼容 +86/86 前缀与常见分隔
	regexp.MustCompile(`(\+?86[- ]?)?1[3-9]\d[- ]?\d{4}[- ]?\d{4}`),
	// 微信号
	regexp.MustCompile(`(?i)(微信号?|weixin|wechat)[:：\s]*[a-zA-Z][a-zA-Z0-9_-]{5,19}`),
}

// NumberScrubber 将手机号、身份证号、银行卡号、微信号替换为 PI:NUMBER
type NumberScrubber struct{}

func (t *NumberScrubber) Type() string {
	return types.TRANSFORM_REMOVE_NUMBER
}

func (t *NumberScrubber) Apply(text string) (Result, error) {
	cleaned, spans := lineSpans(text, func(line string) string {
		for _, p := range numberPatterns {
			line = p.ReplaceAllString(line, "PI:NUMBER")
		}
		return line
	})
	return Result{Text: cleaned, Found: len(spans), Spans: spans}, nil
}
