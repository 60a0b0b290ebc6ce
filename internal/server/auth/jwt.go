// Package auth implements the two credential primitives of the server:
// signed session tokens (HS256 JWTs carrying a user id) and bcrypt password
// hashing.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/coinkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set of a session token: the registered claims plus
// the owning user's id.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64
}

// GenerateToken issues a signed token for userID whose validity window is
// validityDuration from now.
func GenerateToken(userID int64, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies the token's signature and expiry and returns
// the embedded user id. Expired tokens yield common.ErrTokenExpired; any
// other failure yields common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, common.ErrTokenExpired
		}
		return 0, common.ErrInvalidToken
	}

	if !token.Valid {
		return 0, common.ErrInvalidToken
	}

	return claims.UserID, nil
}
