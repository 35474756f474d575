// Package modelscope implements the ModelScope inference API dialect.
// ModelScope is OpenAI-compatible on the wire, so the dialect is a named
// variant of the openaicompat dialect with ModelScope's endpoint and a
// DeepSeek default model.
//
// Importing this package registers the "modelscope" dialect:
//
//	import _ "github.com/penflow/llmkit/llm/modelscope"
package modelscope

import (
	"github.com/penflow/llmkit/llm"
	"github.com/penflow/llmkit/llm/openaicompat"
)

// DialectName is the registry name for this dialect.
const DialectName = "modelscope"

const (
	defaultBaseURL = "https://api-inference.modelscope.cn/v1"
	defaultModel   = "deepseek-ai/DeepSeek-R1"
)

func init() {
	llm.RegisterDialect(DialectName, New())
}

// New creates the ModelScope dialect.
func New() openaicompat.Dialect {
	return openaicompat.New(DialectName, defaultBaseURL, defaultModel)
}
