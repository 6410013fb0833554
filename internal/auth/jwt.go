// internal/auth/jwt.go
package auth

import (
	"errors"
	"log/slog"
	"time"

	"points-calculator/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenService struct {
	secretKey []byte
	expiresIn time.Duration
}

func NewTokenService(cfg config.Config) *TokenService {
	return &TokenService{
		secretKey: []byte(cfg.JWTSecret),
		expiresIn: cfg.JWTExpiresIn,
	}
}

// NewSession hands out a fresh form session id and its token.
func (s *TokenService) NewSession() (sessionID, token string, err error) {
	sessionID = uuid.NewString()
	token, err = s.GenerateToken(sessionID)
	return sessionID, token, err
}

func (s *TokenService) GenerateToken(sessionID string) (string, error) {
	expTime := time.Now().Add(s.expiresIn)
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": expTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(s.secretKey)
	if err == nil {
		slog.Debug("JWT generated", "session_id", sessionID, "expires_at", expTime.Format("2006-01-02 15:04:05"))
	}
	return tokenStr, err
}

// ParseToken returns the session id carried by the token.
func (s *TokenService) ParseToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sid, ok := claims["sid"].(string); ok {
			if _, err := uuid.Parse(sid); err != nil {
				return "", errors.New("invalid session id")
			}
			return sid, nil
		}
	}
	return "", errors.New("invalid token claims")
}
