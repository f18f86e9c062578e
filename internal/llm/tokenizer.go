package llm

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/pkoukk/tiktoken-go"

	"github.com/sevigo/action-planner/internal/core"
)

// DefaultEncoding is the tiktoken encoding used for prompt budgeting.
const DefaultEncoding = "cl100k_base"

// Tokenizer counts tokens with tiktoken and falls back to a character
// heuristic when the encoding could not be loaded.
type Tokenizer struct {
	encoding *tiktoken.Tiktoken
}

var _ core.Tokenizer = (*Tokenizer)(nil)

// NewTokenizer loads the named encoding. Failure is logged and the returned
// tokenizer estimates instead of erroring.
func NewTokenizer(encodingName string, logger *slog.Logger) *Tokenizer {
	if encodingName == "" {
		encodingName = DefaultEncoding
	}
	enc, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		logger.Warn("tiktoken encoding unavailable, estimating token counts", "encoding", encodingName, "error", err)
		return &Tokenizer{}
	}
	return &Tokenizer{encoding: enc}
}

// CountTokens returns the number of tokens in text.
func (t *Tokenizer) CountTokens(text string) int {
	if t.encoding != nil {
		return len(t.encoding.Encode(text, nil, nil))
	}
	return EstimateTokens(text)
}

// TruncateToTokens cuts text down to at most maxTokens tokens.
// A non-positive maxTokens leaves text unchanged.
func (t *Tokenizer) TruncateToTokens(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return text
	}
	if t.encoding != nil {
		tokens := t.encoding.Encode(text, nil, nil)
		if len(tokens) <= maxTokens {
			return text
		}
		return t.encoding.Decode(tokens[:maxTokens])
	}

	if EstimateTokens(text) <= maxTokens {
		return text
	}
	// EstimateTokens never decreases as the prefix grows, so the longest
	// prefix within budget can be found by binary search.
	runes := []rune(text)
	n := sort.Search(len(runes)+1, func(i int) bool {
		return EstimateTokens(string(runes[:i])) > maxTokens
	})
	return string(runes[:n-1])
}

// EstimateTokens is a heuristic: max(runes/4, words), at least 1 for non-blank text.
func EstimateTokens(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	estimate := len([]rune(trimmed)) / 4
	if words := len(strings.Fields(trimmed)); estimate < words {
		estimate = words
	}
	return max(estimate, 1)
}
