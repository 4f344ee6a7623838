package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQAPairs(t *testing.T) {
	content := `Q1: 什么是向量数据库?
A1: 一种以向量为索引的数据库，支持相似度检索。
Q2: pgvector 是什么?
A2: PostgreSQL 的向量扩展。`

	pairs := ParseQAPairs(content)
	require.Len(t, pairs, 2)
	assert.Equal(t, "什么是向量数据库?", pairs[0].Question)
	assert.Equal(t, "一种以向量为索引的数据库，支持相似度检索。", pairs[0].Answer)
	assert.Equal(t, "pgvector 是什么?", pairs[1].Question)
	assert.Equal(t, "PostgreSQL 的向量扩展。", pairs[1].Answer)
}

func TestParseQAPairsMultilineAnswer(t *testing.T) {
	content := "Q1: how to install?\nA1: step one.\nstep two.\n\nQ2: done?\nA2: yes."

	pairs := ParseQAPairs(content)
	require.Len(t, pairs, 2)
	assert.Equal(t, "step one.\nstep two.", pairs[0].Answer)
	assert.Equal(t, "yes.", pairs[1].Answer)
}

func TestParseQAPairsDropsEmpty(t *testing.T) {
	content := "Q1: only a question\nA1:\nQ2: real one\nA2: real answer"

	pairs := ParseQAPairs(content)
	require.Len(t, pairs, 1)
	assert.Equal(t, "real one", pairs[0].Question)
}

func TestParseQAPairsNoMatch(t *testing.T) {
	assert.Empty(t, ParseQAPairs("free text without any markers"))
	assert.Empty(t, ParseQAPairs(""))
}

func TestBuildPrompt(t *testing.T) {
	out := BuildPrompt("summarize: {text}", "hello")
	assert.Equal(t, "summarize: hello", out)

	// 模板缺占位符时按语言回退到默认模板
	out = BuildPrompt("", "这是一段用于测试的中文文本，内容足够长以便语言检测。")
	assert.Contains(t, out, "我的文本：")

	out = BuildPrompt("no placeholder", "this is a sufficiently long english passage for detection.")
	assert.Contains(t, out, "My text:")
}
