package ai

import (
	"regexp"
	"strings"
)

// qaHeadPattern 匹配 "Qn: 问题 An:" 前缀，问题体不跨行贪婪
var qaHeadPattern = regexp.MustCompile(`(?s)Q\d+:\s*(.*?)\s*A\d+:[ \t]*`)

// ParseQAPairs 从模型输出中解析 Qn:/An: 语法的问答对。
// 答案截止到下一个大写 Q 或文本末尾，问题或答案为空的条目丢弃。
func ParseQAPairs(content string) []QAPair {
	matches := qaHeadPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return nil
	}

	var pairs []QAPair
	for _, m := range matches {
		question := strings.TrimSpace(content[m[2]:m[3]])

		answerEnd := len(content)
		if idx := strings.IndexByte(content[m[1]:], 'Q'); idx >= 0 {
			answerEnd = m[1] + idx
		}
		answer := strings.TrimSpace(content[m[1]:answerEnd])

		if question == "" || answer == "" {
			continue
		}
		pairs = append(pairs, QAPair{Question: question, Answer: answer})
	}
	return pairs
}
