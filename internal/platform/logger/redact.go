package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const redacted = "[REDACTED]"

// Field keys containing one of these are never written.
var secretKeyParts = []string{"password", "token", "secret", "authorization", "cookie", "dsn"}

// redactor scrubs key/value pairs before they reach zap. Account identifiers
// are replaced by a salted short hash so log lines stay correlatable. A nil
// redactor passes fields through.
type redactor struct {
	salt string
}

func (r *redactor) fields(kv []interface{}) []interface{} {
	if r == nil || len(kv) == 0 {
		return kv
	}
	out := make([]interface{}, 0, len(kv))
	for i := 0; i+1 < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		out = append(out, key, r.value(strings.ToLower(strings.TrimSpace(key)), kv[i+1]))
	}
	if len(kv)%2 == 1 {
		out = append(out, kv[len(kv)-1])
	}
	return out
}

func (r *redactor) value(key string, val interface{}) interface{} {
	for _, part := range secretKeyParts {
		if strings.Contains(key, part) {
			return redacted
		}
	}
	if key == "username" || strings.HasSuffix(key, "user_id") {
		return r.hash(val)
	}
	if s, ok := val.(string); ok && isBearerToken(s) {
		return redacted
	}
	return val
}

func (r *redactor) hash(val interface{}) string {
	if val == nil {
		return ""
	}
	raw := strings.TrimSpace(fmt.Sprint(val))
	if raw == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(r.salt + raw))
	return "hash:" + hex.EncodeToString(sum[:])[:12]
}

// isBearerToken matches compact JWS strings (header.payload.signature).
func isBearerToken(s string) bool {
	parts := strings.Split(s, ".")
	return len(parts) == 3 && len(parts[0]) > 10 && len(parts[1]) > 10 && len(parts[2]) > 0
}
