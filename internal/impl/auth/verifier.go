package auth

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"go.uber.org/zap"
)

// KeyVerifier checks API keys and remembers successful verifications for
// ttl so repeated requests skip the HMAC.
type KeyVerifier struct {
	secret string
	cache  *ristretto.Cache[string, string]
	ttl    time.Duration
	logger *zap.Logger
}

func NewKeyVerifier(secret string, ttl time.Duration, logger *zap.Logger) (*KeyVerifier, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: 100_000, // ~10x expected keys
		MaxCost:     10_000,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &KeyVerifier{
		secret: secret,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}, nil
}

// Verify returns the username carried by a valid key. Invalid keys yield
// an UnauthorizedError.
func (v *KeyVerifier) Verify(apiKey string) (string, error) {
	if username, ok := v.cache.Get(apiKey); ok {
		return username, nil
	}

	claims, err := DecodeKey(apiKey)
	if err != nil {
		v.logger.Debug("Rejected API key", zap.Error(err))
		return "", err
	}
	if err := CheckSignature(v.secret, claims); err != nil {
		v.logger.Warn("Rejected API key signature", zap.String("username", claims.Username))
		return "", err
	}

	if v.ttl > 0 {
		v.cache.SetWithTTL(apiKey, claims.Username, 1, v.ttl)
	}
	return claims.Username, nil
}

// Close releases the cache.
func (v *KeyVerifier) Close() {
	v.cache.Close()
}
