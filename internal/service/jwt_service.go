package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTService emite y valida access tokens para identificar al usuario en las
// rutas autenticadas. Los flujos de registro/login viven fuera de este
// servicio.
type JWTService struct {
	secret    []byte
	accessTTL time.Duration
	issuer    string
}

type Claims struct {
	UserID    string `json:"uid"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

var (
	ErrJWTInvalid = errors.New("jwt invalid")
)

func NewJWTService(secret string, accessTTL time.Duration) *JWTService {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	return &JWTService{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		issuer:    "jasaku",
	}
}

func (s *JWTService) GenerateAccessToken(userID string) (string, error) {
	if s == nil || len(s.secret) == 0 {
		return "", ErrJWTInvalid
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", ErrJWTInvalid
	}
	now := time.Now().UTC()
	claims := Claims{
		UserID:    userID,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ParseAccessToken(accessToken string) (Claims, error) {
	if s == nil || len(s.secret) == 0 {
		return Claims{}, ErrJWTInvalid
	}
	if strings.TrimSpace(accessToken) == "" {
		return Claims{}, ErrJWTInvalid
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(accessToken, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrJWTInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrJWTInvalid
	}
	if claims.TokenType != "access" || strings.TrimSpace(claims.UserID) == "" {
		return Claims{}, ErrJWTInvalid
	}
	return claims, nil
}
