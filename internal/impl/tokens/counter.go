package tokens

import (
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
	"go.uber.org/zap"
)

// TiktokenCounter counts tokens with the BPE encoding of model. The encoding
// is loaded on first use; when it cannot be loaded the counter falls back to
// an estimate of four characters per token.
type TiktokenCounter struct {
	model  string
	once   sync.Once
	enc    *tiktoken.Tiktoken
	logger *zap.Logger
}

func NewTiktokenCounter(model string, logger *zap.Logger) *TiktokenCounter {
	return &TiktokenCounter{model: model, logger: logger}
}

func (c *TiktokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	c.once.Do(func() {
		enc, err := tiktoken.EncodingForModel(c.model)
		if err != nil {
			c.logger.Warn("Token encoding unavailable, estimating token counts",
				zap.String("model", c.model),
				zap.Error(err))
			return
		}
		c.enc = enc
	})

	if c.enc == nil {
		return EstimateTokens(text)
	}
	return len(c.enc.Encode(text, nil, nil))
}

// EstimateTokens approximates a token count from the character count.
func EstimateTokens(text string) int {
	return (utf8.RuneCountInString(text) + 3) / 4
}
