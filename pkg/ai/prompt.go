package ai

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

const PROMPT_VAR_TEXT = "{text}"

const PROMPT_QA_SPLIT_CN = `我会给你一段文本，学习它们，并整理学习成果，要求为：
1. 提出最多 25 个问题。
2. 给出每个问题的答案。
3. 答案要详细完整，答案可以包含普通文字、链接、代码、表格、公式等。
4. 按格式返回多个问题和答案:

Q1: 问题。
A1: 答案。
Q2:
A2:
……

我的文本：{text}`

const PROMPT_QA_SPLIT_EN = `I will give you a passage of text. Study it and summarize what you learn, with the following requirements:
1. Propose up to 25 questions.
2. Give the answer to each question.
3. Answers should be detailed and complete, and may contain plain text, links, code, tables and formulas.
4. Return the questions and answers in this format:

Q1: question.
A1: answer.
Q2:
A2:
...

My text: {text}`

// BuildPrompt 将文本填入模板。模板为空或没有 {text} 占位符时
// 根据文本语言选默认模板。
func BuildPrompt(template, text string) string {
	if template == "" || !strings.Contains(template, PROMPT_VAR_TEXT) {
		template = defaultTemplate(text)
	}
	return strings.ReplaceAll(template, PROMPT_VAR_TEXT, text)
}

func defaultTemplate(text string) string {
	info := whatlanggo.Detect(text)
	if info.Lang == whatlanggo.Cmn {
		return PROMPT_QA_SPLIT_CN
	}
	return PROMPT_QA_SPLIT_EN
}
