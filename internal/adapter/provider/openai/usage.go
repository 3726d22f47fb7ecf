// Package openai maps OpenAI chat completion responses onto the curation
// pipeline's token accounting.
package openai

import (
	oai "github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

// MappingVersion identifies the response-shape mapping below. Bump it when the
// mapping changes so stored snapshots stay interpretable.
const MappingVersion = "openai-chat/v1"

// UsageFromChatCompletion extracts token usage from resp.
//
// When the usage block is missing (all counters zero) the snapshot is zero and
// flagged Estimated. When only TotalTokens is missing it is derived as
// prompt + completion, also flagged Estimated.
func UsageFromChatCompletion(resp oai.ChatCompletionResponse) domain.TokenUsage {
	return UsageFrom(resp.Usage)
}

// UsageFrom maps a bare usage block.
func UsageFrom(u oai.Usage) domain.TokenUsage {
	usage := domain.TokenUsage{
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		TotalTokens:      u.TotalTokens,
		MappingVersion:   MappingVersion,
	}

	switch {
	case u.PromptTokens == 0 && u.CompletionTokens == 0 && u.TotalTokens == 0:
		usage.Estimated = true
	case u.TotalTokens == 0:
		usage.TotalTokens = u.PromptTokens + u.CompletionTokens
		usage.Estimated = true
	}

	return usage
}
