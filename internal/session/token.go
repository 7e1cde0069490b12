package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry inspects the bearer token without verifying its signature
// and returns the embedded expiry claim. The API remains the authority
// on token validity; this is only used to log a warning when the token
// will die before the idle window does.
func TokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
