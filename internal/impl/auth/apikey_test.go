package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/drujensen/chatkeeper/internal/domain/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "mock-secret-key"

func TestGenerateKey_RoundTrip(t *testing.T) {
	issued := time.Date(2025, 5, 22, 10, 54, 37, 0, time.UTC)

	key, err := GenerateKey(testSecret, "alice", issued)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "sk-alice-"))

	claims, err := DecodeKey(BearerPrefix + key)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.NoError(t, CheckSignature(testSecret, claims))

	at, ok := claims.IssuedAt()
	assert.True(t, ok)
	assert.Equal(t, issued, at)
}

func TestGenerateKey_RejectsBadUsernames(t *testing.T) {
	_, err := GenerateKey(testSecret, "", time.Now())
	assert.IsType(t, &errs.ValidationError{}, err)

	_, err = GenerateKey(testSecret, "first-last", time.Now())
	assert.IsType(t, &errs.ValidationError{}, err)
}

func TestSigningPayload_MatchesPythonDumps(t *testing.T) {
	payload, err := signingPayload("alice", json.RawMessage(`1716375277`))
	require.NoError(t, err)
	assert.Equal(t, `{"username": "alice", "created_at": 1716375277}`, payload)

	payload, err = signingPayload("zoë", json.RawMessage(`"2025-05-22T10:54:37.123456"`))
	require.NoError(t, err)
	assert.Equal(t, `{"username": "zo\u00eb", "created_at": "2025-05-22T10:54:37.123456"}`, payload)
}

func TestCheckSignature_StringTimestamp(t *testing.T) {
	created := json.RawMessage(`"2025-05-22T10:54:37.123456"`)
	signature, err := Sign(testSecret, "bob", created)
	require.NoError(t, err)

	document, err := json.Marshal(map[string]any{
		"username":   "bob",
		"created_at": "2025-05-22T10:54:37.123456",
		"signature":  signature,
	})
	require.NoError(t, err)
	key := "sk-bob-" + base64.StdEncoding.EncodeToString(document)

	claims, err := DecodeKey(key)
	require.NoError(t, err)
	assert.NoError(t, CheckSignature(testSecret, claims))

	at, ok := claims.IssuedAt()
	assert.True(t, ok)
	assert.Equal(t, 2025, at.Year())
}

func TestDecodeKey_Malformed(t *testing.T) {
	tests := map[string]string{
		"missing prefix": "pk-alice-abc",
		"missing parts":  "sk-alice",
		"bad base64":     "sk-alice-!!!",
		"not json":       "sk-alice-" + base64.StdEncoding.EncodeToString([]byte("hello")),
		"missing fields": "sk-alice-" + base64.StdEncoding.EncodeToString([]byte(`{"username": "alice"}`)),
	}

	for name, key := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := DecodeKey(key)

			assert.Nil(t, claims)
			assert.IsType(t, &errs.UnauthorizedError{}, err)
		})
	}
}

func TestKeyVerifier_Verify(t *testing.T) {
	verifier, err := NewKeyVerifier(testSecret, time.Minute, zap.NewNop())
	require.NoError(t, err)
	defer verifier.Close()

	key, err := GenerateKey(testSecret, "alice", time.Now())
	require.NoError(t, err)

	username, err := verifier.Verify("Bearer " + key)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)

	verifier.cache.Wait()
	cached, ok := verifier.cache.Get("Bearer " + key)
	assert.True(t, ok)
	assert.Equal(t, "alice", cached)
}

func TestKeyVerifier_RejectsTamperedKeys(t *testing.T) {
	verifier, err := NewKeyVerifier(testSecret, time.Minute, zap.NewNop())
	require.NoError(t, err)
	defer verifier.Close()

	t.Run("other secret", func(t *testing.T) {
		key, err := GenerateKey("another-secret", "alice", time.Now())
		require.NoError(t, err)

		_, err = verifier.Verify(key)
		assert.IsType(t, &errs.UnauthorizedError{}, err)
	})

	t.Run("swapped username", func(t *testing.T) {
		key, err := GenerateKey(testSecret, "alice", time.Now())
		require.NoError(t, err)
		claims, err := DecodeKey(key)
		require.NoError(t, err)

		forged := `{"username": "mallory", "created_at": ` + string(claims.CreatedAt) + `, "signature": "` + claims.Signature + `"}`
		_, err = verifier.Verify("sk-mallory-" + base64.StdEncoding.EncodeToString([]byte(forged)))
		assert.IsType(t, &errs.UnauthorizedError{}, err)
	})
}
