package handler

import (
	"github.com/AnthoniusHendriyanto/chat-login/internal/auth/domain"
	"github.com/gofiber/fiber/v2"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

func sessionCookies(s *domain.Session, secure bool) []*fiber.Cookie {
	return []*fiber.Cookie{
		{
			Name:     AccessTokenCookie,
			Value:    s.AccessToken,
			Path:     "/",
			Expires:  s.AccessExpiresAt,
			Secure:   secure,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		},
		{
			Name:     RefreshTokenCookie,
			Value:    s.RefreshToken,
			Path:     "/",
			Expires:  s.RefreshExpiresAt,
			Secure:   secure,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		},
	}
}
