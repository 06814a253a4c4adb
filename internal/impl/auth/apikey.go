package auth

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/drujensen/chatkeeper/internal/domain/errs"
)

const (
	KeyPrefix    = "sk-"
	BearerPrefix = "Bearer "
)

// Claims is the JSON document carried inside an API key. CreatedAt is kept
// raw because issued keys carry either a unix timestamp or an ISO string,
// and the signature covers whichever form was issued.
type Claims struct {
	Username  string          `json:"username"`
	CreatedAt json.RawMessage `json:"created_at"`
	Signature string          `json:"signature"`
}

// IssuedAt interprets CreatedAt as a point in time.
func (c *Claims) IssuedAt() (time.Time, bool) {
	raw := bytes.TrimSpace(c.CreatedAt)
	if seconds, err := strconv.ParseInt(string(raw), 10, 64); err == nil {
		return time.Unix(seconds, 0).UTC(), true
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// DecodeKey parses "[Bearer ]sk-{username}-{base64(json)}" without checking
// the signature.
func DecodeKey(apiKey string) (*Claims, error) {
	apiKey = strings.TrimPrefix(apiKey, BearerPrefix)

	if !strings.HasPrefix(apiKey, KeyPrefix) {
		return nil, errs.UnauthorizedErrorf("invalid API key format, must start with %q", KeyPrefix)
	}

	parts := strings.SplitN(apiKey, "-", 3)
	if len(parts) != 3 {
		return nil, errs.UnauthorizedErrorf("invalid API key format, must be sk-{username}-{base64_encoded_data}")
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		if decoded, err = base64.RawStdEncoding.DecodeString(parts[2]); err != nil {
			return nil, errs.UnauthorizedErrorf("invalid API key data format: %v", err)
		}
	}

	var claims Claims
	if err := json.Unmarshal(decoded, &claims); err != nil {
		return nil, errs.UnauthorizedErrorf("invalid API key data format: %v", err)
	}
	if claims.Username == "" || len(claims.CreatedAt) == 0 || claims.Signature == "" {
		return nil, errs.UnauthorizedErrorf("invalid API key data format: username, created_at and signature are required")
	}

	return &claims, nil
}

// Sign returns the hex HMAC-SHA256 of the signing payload under secret.
func Sign(secret, username string, createdAt json.RawMessage) (string, error) {
	payload, err := signingPayload(username, createdAt)
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// CheckSignature verifies claims against secret.
func CheckSignature(secret string, claims *Claims) error {
	expected, err := Sign(secret, claims.Username, claims.CreatedAt)
	if err != nil {
		return errs.UnauthorizedErrorf("invalid API key data format: %v", err)
	}
	if !hmac.Equal([]byte(expected), []byte(claims.Signature)) {
		return errs.UnauthorizedErrorf("invalid API key signature")
	}
	return nil
}

// GenerateKey issues a key for username stamped with createdAt as unix seconds.
func GenerateKey(secret, username string, createdAt time.Time) (string, error) {
	if username == "" {
		return "", errs.ValidationErrorf("username is required")
	}
	if strings.Contains(username, "-") {
		return "", errs.ValidationErrorf("username must not contain '-'")
	}

	issued := json.RawMessage(strconv.FormatInt(createdAt.Unix(), 10))
	signature, err := Sign(secret, username, issued)
	if err != nil {
		return "", err
	}

	document := fmt.Sprintf(`{"username": %s, "created_at": %s, "signature": %s}`,
		pythonQuote(username), issued, pythonQuote(signature))

	return KeyPrefix + username + "-" + base64.StdEncoding.EncodeToString([]byte(document)), nil
}

// signingPayload renders {"username": ..., "created_at": ...} with the
// separators and escaping of Python's json.dumps defaults, which is what
// existing keys were signed over.
func signingPayload(username string, createdAt json.RawMessage) (string, error) {
	created, err := pythonValue(createdAt)
	if err != nil {
		return "", err
	}
	return `{"username": ` + pythonQuote(username) + `, "created_at": ` + created + `}`, nil
}

func pythonValue(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", fmt.Errorf("created_at is empty")
	}
	switch trimmed[0] {
	case '"':
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return "", err
		}
		return pythonQuote(value), nil
	case '{', '[':
		return "", fmt.Errorf("created_at must be a string or a number")
	}
	return string(trimmed), nil
}

// pythonQuote quotes s the way json.dumps does with ensure_ascii enabled.
func pythonQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			switch {
			case r < 0x20 || (r >= 0x7f && r <= 0xffff):
				fmt.Fprintf(&b, `\u%04x`, r)
			case r > 0xffff:
				hi, lo := utf16.EncodeRune(r)
				fmt.Fprintf(&b, `\u%04x\u%04x`, hi, lo)
			default:
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
