// Package tokenizer estimates how many model tokens a finished snapshot occupies.
package tokenizer

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Counter estimates token counts for text content.
type Counter interface {
	Name() string
	CountString(input string) (int, error)
}

// Config captures tokenizer selection parameters provided by the CLI.
type Config struct {
	Model string
}

const (
	// DefaultModel is used when no model is configured.
	DefaultModel        = "gpt-4o"
	defaultEncodingName = "cl100k_base"

	errorInitializeEncodingFormat = "initialize %s tokenizer: %w"
)

// NewCounter returns a tiktoken Counter for the requested model together with the name of the encoding
// actually in use. Models unknown to tiktoken fall back to the cl100k_base encoding.
func NewCounter(cfg Config) (Counter, string, error) {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	encodingName := encodingNameForModel(strings.ToLower(model))
	encoding, encodingError := tiktoken.GetEncoding(encodingName)
	if encodingError != nil {
		return nil, "", fmt.Errorf(errorInitializeEncodingFormat, encodingName, encodingError)
	}
	return encodingCounter{encoding: encoding, name: encodingName}, encodingName, nil
}

// encodingNameForModel resolves a lower-case model name through tiktoken's model tables.
// An exact entry wins over the longest matching prefix.
func encodingNameForModel(model string) string {
	if !isOpenAIModel(model) {
		return defaultEncodingName
	}
	if encodingName, known := tiktoken.MODEL_TO_ENCODING[model]; known {
		return encodingName
	}
	matchedPrefix := ""
	encodingName := defaultEncodingName
	for prefix, prefixEncoding := range tiktoken.MODEL_PREFIX_TO_ENCODING {
		if strings.HasPrefix(model, prefix) && len(prefix) > len(matchedPrefix) {
			matchedPrefix = prefix
			encodingName = prefixEncoding
		}
	}
	return encodingName
}

func isOpenAIModel(model string) bool {
	prefixes := []string{
		"gpt-",
		"text-embedding",
		"davinci",
		"curie",
		"babbage",
		"ada",
		"code-",
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}
