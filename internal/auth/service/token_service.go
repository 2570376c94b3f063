package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/AnthoniusHendriyanto/chat-login/internal/auth/service TokenGenerator

import (
	"fmt"
	"strconv"
	"time"

	"github.com/AnthoniusHendriyanto/chat-login/internal/auth/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenGenerator interface {
	Issue(accountID int64, identifier string) (*domain.Session, error)
	VerifyAccessToken(tokenString string) (*JWTCustomClaims, error)
}

type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

func NewTokenService(accessSecret, refreshSecret string, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

// Issue mints a fresh access/refresh token pair bound to the account and the
// identifier it logged in with. It has no side effects.
func (ts *TokenService) Issue(accountID int64, identifier string) (*domain.Session, error) {
	now := time.Now()
	accessExp := now.Add(ts.AccessTokenExpiry)
	refreshExp := now.Add(ts.RefreshTokenExpiry)

	accessToken, err := ts.sign(accountID, identifier, now, accessExp, ts.AccessTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshToken, err := ts.sign(accountID, identifier, now, refreshExp, ts.RefreshTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	return &domain.Session{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func (ts *TokenService) sign(accountID int64, identifier string, now, exp time.Time, secret string) (string, error) {
	claims := JWTCustomClaims{
		UserID:   accountID,
		Username: identifier,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(accountID, 10),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyAccessToken parses and validates the given access token string.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.AccessTokenSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
