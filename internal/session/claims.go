package session

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

var claimKeys = []string{"user_id", "userId", "id"}

// UserIDFromToken reads the user id from the token claims without verifying
// the signature. Opaque or id-less tokens yield zero.
func UserIDFromToken(token string) int64 {
	if token == "" {
		return 0
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0
	}

	for _, key := range claimKeys {
		if id, ok := toID(claims[key]); ok {
			return id
		}
	}
	if sub, err := claims.GetSubject(); err == nil {
		if id, ok := toID(sub); ok {
			return id
		}
	}
	return 0
}

func toID(v any) (int64, bool) {
	switch x := v.(type) {
	case float64:
		if x > 0 && x == float64(int64(x)) {
			return int64(x), true
		}
	case string:
		id, err := strconv.ParseInt(x, 10, 64)
		if err == nil && id > 0 {
			return id, true
		}
	}
	return 0, false
}
