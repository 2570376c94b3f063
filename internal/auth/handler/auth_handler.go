package handler

import (
	"github.com/AnthoniusHendriyanto/chat-login/internal/auth/dto"
	"github.com/AnthoniusHendriyanto/chat-login/internal/auth/service"
	"github.com/AnthoniusHendriyanto/chat-login/internal/auth/view"
	"github.com/AnthoniusHendriyanto/chat-login/internal/logging"
	"github.com/gofiber/fiber/v2"
)

// loginSuccessBody reloads the current page so a partial-page front end picks
// up the new session cookie.
const loginSuccessBody = "loading...\n<meta http-equiv=\"refresh\" content=\"0\" />"

type AuthHandler struct {
	authService  *service.AuthService
	views        *view.Renderer
	log          logging.Logger
	cookieSecure bool
}

func NewAuthHandler(authService *service.AuthService, views *view.Renderer, log logging.Logger, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		views:        views,
		log:          log,
		cookieSecure: cookieSecure,
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid input")
	}

	ctx := c.UserContext()

	outcome, err := h.authService.Authenticate(ctx, input)
	if err != nil {
		return err
	}

	if !outcome.IsAuthenticated() {
		body, err := h.views.LoginPartial(outcome.Message)
		if err != nil {
			return err
		}
		return sendHTML(c, body)
	}

	session, err := h.authService.IssueSession(ctx, outcome)
	if err != nil {
		return err
	}

	for _, cookie := range sessionCookies(session, h.cookieSecure) {
		c.Cookie(cookie)
	}

	h.log.Info(ctx, "login succeeded", "account_id", outcome.AccountID)
	return sendHTML(c, loginSuccessBody)
}

// Index shows the home page to a caller holding a valid access token and the
// login page to everyone else.
func (h *AuthHandler) Index(c *fiber.Ctx) error {
	var (
		body string
		err  error
	)

	claims, verr := h.authService.CurrentUser(c.Cookies(AccessTokenCookie))
	if verr != nil {
		body, err = h.views.LoginPage()
	} else {
		body, err = h.views.HomePage(claims.Username)
	}
	if err != nil {
		return err
	}

	return sendHTML(c, body)
}

func (h *AuthHandler) Health(c *fiber.Ctx) error {
	if err := h.authService.Ready(c.UserContext()); err != nil {
		h.log.Warn(c.UserContext(), "health check failed", "error", err)
		return c.Status(fiber.StatusServiceUnavailable).SendString("unavailable")
	}
	return c.SendString("ok")
}

func sendHTML(c *fiber.Ctx, body string) error {
	c.Type("html", "utf-8")
	return c.Status(fiber.StatusOK).SendString(body)
}
