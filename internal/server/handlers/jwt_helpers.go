package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrAuthDisabled возвращается при попытке выпустить токен без секрета
var ErrAuthDisabled = errors.New("jwt secret is not configured")

// CustomClaims представляет JWT claims для записи постов
type CustomClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTConfig содержит конфигурацию для JWT. Пустой Secret отключает проверку
type JWTConfig struct {
	Issuer string
	Secret []byte
	TTL    time.Duration
}

// Enabled reports whether writes require a token
func (c JWTConfig) Enabled() bool {
	return len(c.Secret) > 0
}

// GenerateAccessToken создает JWT для указанной группы постов (userId)
func GenerateAccessToken(cfg JWTConfig, userID int64) (string, time.Time, error) {
	if !cfg.Enabled() {
		return "", time.Time{}, ErrAuthDisabled
	}

	now := time.Now()
	expiresAt := now.Add(cfg.TTL)

	claims := CustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// ValidateAccessToken валидирует и парсит JWT
func ValidateAccessToken(cfg JWTConfig, tokenString string) (*CustomClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return cfg.Secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
