package tokenizer

import (
	"errors"

	"github.com/pkoukk/tiktoken-go"
)

// ErrNilEncoding is returned by a counter constructed without a tiktoken encoding.
var ErrNilEncoding = errors.New("nil tiktoken encoding")

// encodingCounter counts tokens with a tiktoken byte-pair encoding. Special tokens are encoded as plain text.
type encodingCounter struct {
	encoding *tiktoken.Tiktoken
	name     string
}

func (counter encodingCounter) Name() string {
	return counter.name
}

func (counter encodingCounter) CountString(input string) (int, error) {
	if counter.encoding == nil {
		return 0, ErrNilEncoding
	}
	return len(counter.encoding.Encode(input, nil, nil)), nil
}
