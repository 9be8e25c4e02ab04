package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// refreshMargin is subtracted from the token expiry so a request never
// races the literal expiry instant.
const refreshMargin = 5 * time.Second

// tokenExpired reports whether the access token expires within
// refreshMargin of now. Tokens without a decodable exp claim are treated as
// live: expiry is enforced server side, the local decode only front-runs
// it, so an undecodable token must not block requests.
func tokenExpired(raw string, now time.Time) bool {
	token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return time.Unix(int64(exp), 0).Sub(now) <= refreshMargin
}
