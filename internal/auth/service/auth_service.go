package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AnthoniusHendriyanto/chat-login/internal/auth/domain"
	"github.com/AnthoniusHendriyanto/chat-login/internal/auth/dto"
	autherror "github.com/AnthoniusHendriyanto/chat-login/internal/errors"
	"github.com/AnthoniusHendriyanto/chat-login/internal/logging"
	"github.com/google/uuid"
)

const decoySecret = "decoy-password-for-unknown-accounts"

type AuthService struct {
	repo   domain.AccountRepository
	tokens TokenGenerator
	hasher PasswordHasher
	log    logging.Logger

	decoyOnce sync.Once
	decoyHash string
}

func NewAuthService(repo domain.AccountRepository, tokens TokenGenerator, hasher PasswordHasher, log logging.Logger) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
		hasher: hasher,
		log:    log,
	}
}

// Authenticate checks the submitted credentials. Unknown accounts and wrong
// passwords produce the same Rejected outcome; store and hash failures are
// returned as errors.
func (s *AuthService) Authenticate(ctx context.Context, input dto.LoginInput) (*domain.LoginOutcome, error) {
	id := ClassifyIdentifier(input.Username)

	account, err := s.repo.FindByIdentifier(ctx, id)
	if err != nil {
		if !errors.Is(err, autherror.ErrStoreFailure) {
			err = fmt.Errorf("%w: %w", autherror.ErrStoreFailure, err)
		}
		return nil, err
	}

	if account == nil {
		s.burnDecoy(input.Password)
		s.log.Debug(ctx, "login rejected", "reason", "no account", "identifier_kind", id.Kind.String())
		return domain.Rejected(), nil
	}

	match, err := s.hasher.Verify(input.Password, account.PasswordHash)
	if err != nil {
		if !errors.Is(err, autherror.ErrHashVerification) {
			err = fmt.Errorf("%w: %w", autherror.ErrHashVerification, err)
		}
		return nil, fmt.Errorf("account %d: %w", account.ID, err)
	}

	if !match {
		s.log.Debug(ctx, "login rejected", "reason", "wrong password", "account_id", account.ID)
		return domain.Rejected(), nil
	}

	s.log.Debug(ctx, "password correct", "account_id", account.ID)
	return domain.Authenticated(account.ID, input.Username), nil
}

// IssueSession mints the session tokens for an authenticated outcome and
// records the refresh token. Applying the session to a response is the
// caller's job.
func (s *AuthService) IssueSession(ctx context.Context, outcome *domain.LoginOutcome) (*domain.Session, error) {
	if !outcome.IsAuthenticated() {
		return nil, fmt.Errorf("%w: outcome is not authenticated", autherror.ErrTokenIssuance)
	}

	session, err := s.tokens.Issue(outcome.AccountID, outcome.Identifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", autherror.ErrTokenIssuance, err)
	}

	rt := &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    outcome.AccountID,
		Token:     session.RefreshToken,
		ExpiresAt: session.RefreshExpiresAt,
		CreatedAt: time.Now(),
		Revoked:   false,
	}
	if err := s.repo.StoreRefreshToken(ctx, rt); err != nil {
		return nil, fmt.Errorf("%w: %w", autherror.ErrTokenIssuance, err)
	}

	s.log.Debug(ctx, "created tokens", "account_id", outcome.AccountID)
	return session, nil
}

// CurrentUser resolves an access token cookie to its claims.
func (s *AuthService) CurrentUser(accessToken string) (*JWTCustomClaims, error) {
	if accessToken == "" {
		return nil, autherror.ErrInvalidCredentials
	}
	return s.tokens.VerifyAccessToken(accessToken)
}

func (s *AuthService) Ready(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// burnDecoy spends one hash comparison so that unknown accounts take as long
// to reject as wrong passwords.
func (s *AuthService) burnDecoy(secret string) {
	s.decoyOnce.Do(func() {
		h, err := s.hasher.Hash(decoySecret)
		if err != nil {
			s.log.Warn(context.Background(), "could not build decoy hash", "error", err)
			return
		}
		s.decoyHash = h
	})
	if s.decoyHash != "" {
		_, _ = s.hasher.Verify(secret, s.decoyHash)
	}
}
