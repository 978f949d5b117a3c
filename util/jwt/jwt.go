package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issue signs a short-lived HS256 token for the given user. The API surface
// has no protected routes; the token is informational for clients that want
// to carry an identity proof.
func Issue(secret string, userID int64, ttlHours int) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Duration(ttlHours) * time.Hour).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
