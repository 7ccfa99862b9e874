package auth

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vkclicks/vkclicks-api/internal/models"
)

// GenerateKey returns a 40-char opaque token key.
func GenerateKey() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// EncodeUID and DecodeUID translate a user id to the urlsafe form used
// in reset links.
func EncodeUID(userID uint) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatUint(uint64(userID), 10)))
}

func DecodeUID(uid string) (uint, error) {
	raw, err := base64.RawURLEncoding.DecodeString(uid)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// Reset tokens are HS256 JWTs signed with a key derived from the
// server secret and the user's current password hash, so a token stops
// validating as soon as the password changes. That makes each token
// effectively single-use without storing state.

func resetKey(secret string, user *models.User) []byte {
	return []byte(secret + user.PasswordHash)
}

func MakeResetToken(secret string, user *models.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(resetKey(secret, user))
}

func CheckResetToken(secret string, user *models.User, tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return resetKey(secret, user), nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}

	sub, ok := claims["sub"].(float64)
	if !ok || uint(sub) != user.ID {
		return false
	}

	return true
}

// ResetURL builds the path the frontend consumes.
func ResetURL(uid, token string) string {
	return fmt.Sprintf("/reset-password/%s/%s/", uid, token)
}
