// Package auth implements password hashing and bearer-token issuance.
package auth

import (
	"crypto/md5"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer   = "devconnect-api"
	tokenAudience = "devconnect-client"

	// Tokens are valid for 5 days from issuance.
	tokenTTL = 5 * 24 * time.Hour
)

// HashPassword derives a salted bcrypt hash from a raw password. The raw
// password is never stored or logged.
func HashPassword(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether raw matches the stored bcrypt hash.
// bcrypt's comparison is constant time with respect to the hash.
func CheckPassword(raw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(raw)) == nil
}

// TokenManager signs and verifies HS256 bearer tokens. The payload carries
// the user id in the subject claim and nothing else beyond standard claims.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: tokenTTL}
}

// NewTokenManagerWithTTL is used by tests that need short-lived tokens.
func NewTokenManagerWithTTL(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for the given user id.
func (m *TokenManager) Issue(userID uint) (string, error) {
	if len(m.secret) == 0 {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": tokenIssuer,
		"aud": tokenAudience,
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
		"jti": uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses a presented token and returns the embedded user id. It
// fails on expired, malformed, or signature-mismatched tokens without
// distinguishing between those cases.
func (m *TokenManager) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return m.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, fmt.Errorf("invalid subject claim")
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil || userID == 0 {
		return 0, fmt.Errorf("invalid user ID in token")
	}

	return uint(userID), nil
}

// GravatarURL derives the avatar URL assigned at registration: a 200px
// gravatar, PG rated, with the mystery-man fallback.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?d=mm&r=pg&s=200", hash)
}
