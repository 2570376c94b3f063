package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AnthoniusHendriyanto/chat-login/internal/auth/domain"
	"github.com/AnthoniusHendriyanto/chat-login/internal/auth/dto"
	"github.com/AnthoniusHendriyanto/chat-login/internal/auth/service"
	autherror "github.com/AnthoniusHendriyanto/chat-login/internal/errors"
	"github.com/AnthoniusHendriyanto/chat-login/internal/logging"
	"github.com/AnthoniusHendriyanto/chat-login/internal/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func mustHash(t *testing.T, secret string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestService(ctrl *gomock.Controller) (*service.AuthService, *mocks.MockAccountRepository, *mocks.MockTokenGenerator) {
	mockRepo := mocks.NewMockAccountRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	s := service.NewAuthService(mockRepo, mockTokens, service.NewBcryptHasher(bcrypt.MinCost), logging.Nop())
	return s, mockRepo, mockTokens
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockRepo, _ := newTestService(ctrl)
	account := &domain.Account{ID: 42, PasswordHash: mustHash(t, "correct")}

	mockRepo.EXPECT().FindByIdentifier(gomock.Any(), domain.UsernameIdentifier("alice")).Return(account, nil)

	outcome, err := s.Authenticate(context.Background(), dto.LoginInput{Username: "alice", Password: "correct"})

	require.NoError(t, err)
	assert.True(t, outcome.IsAuthenticated())
	assert.Equal(t, int64(42), outcome.AccountID)
	assert.Equal(t, "alice", outcome.Identifier)
}

func TestAuthService_Authenticate_EmailRoutesToEmailLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockRepo, _ := newTestService(ctrl)
	account := &domain.Account{ID: 7, PasswordHash: mustHash(t, "correct")}

	mockRepo.EXPECT().FindByIdentifier(gomock.Any(), domain.EmailIdentifier("user@example.com")).Return(account, nil)

	outcome, err := s.Authenticate(context.Background(), dto.LoginInput{Username: "user@example.com", Password: "correct"})

	require.NoError(t, err)
	assert.True(t, outcome.IsAuthenticated())
	assert.Equal(t, "user@example.com", outcome.Identifier)
}

func TestAuthService_Authenticate_UniformRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockRepo, _ := newTestService(ctrl)
	account := &domain.Account{ID: 42, PasswordHash: mustHash(t, "correct")}

	mockRepo.EXPECT().FindByIdentifier(gomock.Any(), domain.UsernameIdentifier("alice")).Return(account, nil)
	mockRepo.EXPECT().FindByIdentifier(gomock.Any(), domain.UsernameIdentifier("ghost")).Return(nil, nil)

	wrongPassword, err := s.Authenticate(context.Background(), dto.LoginInput{Username: "alice", Password: "wrong"})
	require.NoError(t, err)

	unknownUser, err := s.Authenticate(context.Background(), dto.LoginInput{Username: "ghost", Password: "correct"})
	require.NoError(t, err)

	assert.False(t, wrongPassword.IsAuthenticated())
	assert.Equal(t, domain.RejectionMessage, wrongPassword.Message)
	assert.Equal(t, wrongPassword, unknownUser)
}

func TestAuthService_Authenticate_EmptyIdentifierHitsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockRepo, _ := newTestService(ctrl)
	mockRepo.EXPECT().FindByIdentifier(gomock.Any(), domain.UsernameIdentifier("")).Return(nil, nil)

	outcome, err := s.Authenticate(context.Background(), dto.LoginInput{})

	require.NoError(t, err)
	assert.False(t, outcome.IsAuthenticated())
}

func TestAuthService_Authenticate_StoreFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockRepo, _ := newTestService(ctrl)
	mockRepo.EXPECT().FindByIdentifier(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	outcome, err := s.Authenticate(context.Background(), dto.LoginInput{Username: "alice", Password: "pw"})

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, autherror.ErrStoreFailure)
}

func TestAuthService_Authenticate_MalformedHashIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockRepo, _ := newTestService(ctrl)
	mockRepo.EXPECT().FindByIdentifier(gomock.Any(), gomock.Any()).Return(&domain.Account{ID: 1, PasswordHash: "garbage"}, nil)

	outcome, err := s.Authenticate(context.Background(), dto.LoginInput{Username: "alice", Password: "pw"})

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, autherror.ErrHashVerification)
	assert.NotErrorIs(t, err, autherror.ErrInvalidCredentials)
}

// recordingHasher remembers every hash it was asked to verify against.
type recordingHasher struct {
	*service.BcryptHasher
	verified []string
}

func (h *recordingHasher) Verify(secret, hash string) (bool, error) {
	h.verified = append(h.verified, hash)
	return h.BcryptHasher.Verify(secret, hash)
}

func TestAuthService_Authenticate_UnknownAccountPaysConfiguredCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const cost = bcrypt.MinCost + 1
	hasher := &recordingHasher{BcryptHasher: service.NewBcryptHasher(cost)}
	mockRepo := mocks.NewMockAccountRepository(ctrl)
	s := service.NewAuthService(mockRepo, mocks.NewMockTokenGenerator(ctrl), hasher, logging.Nop())

	mockRepo.EXPECT().FindByIdentifier(gomock.Any(), domain.UsernameIdentifier("ghost")).Return(nil, nil).Times(2)

	for i := 0; i < 2; i++ {
		outcome, err := s.Authenticate(context.Background(), dto.LoginInput{Username: "ghost", Password: "pw"})
		require.NoError(t, err)
		assert.False(t, outcome.IsAuthenticated())
	}

	require.Len(t, hasher.verified, 2)
	for _, hash := range hasher.verified {
		got, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, cost, got)
	}
}

func TestAuthService_IssueSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockRepo, mockTokens := newTestService(ctrl)
	ctx := context.Background()
	outcome := domain.Authenticated(42, "alice")
	session := &domain.Session{
		AccessToken:      "access",
		AccessExpiresAt:  time.Now().Add(15 * time.Minute),
		RefreshToken:     "refresh",
		RefreshExpiresAt: time.Now().Add(24 * time.Hour),
	}

	t.Run("success", func(t *testing.T) {
		mockTokens.EXPECT().Issue(int64(42), "alice").Return(session, nil)
		mockRepo.EXPECT().StoreRefreshToken(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rt *domain.RefreshToken) error {
				assert.NotEmpty(t, rt.ID)
				assert.Equal(t, int64(42), rt.UserID)
				assert.Equal(t, "refresh", rt.Token)
				assert.Equal(t, session.RefreshExpiresAt, rt.ExpiresAt)
				assert.False(t, rt.Revoked)
				return nil
			})

		got, err := s.IssueSession(ctx, outcome)
		require.NoError(t, err)
		assert.Equal(t, session, got)
	})

	t.Run("signing failure", func(t *testing.T) {
		mockTokens.EXPECT().Issue(int64(42), "alice").Return(nil, errors.New("sign failed"))

		got, err := s.IssueSession(ctx, outcome)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, autherror.ErrTokenIssuance)
	})

	t.Run("refresh token store failure", func(t *testing.T) {
		mockTokens.EXPECT().Issue(int64(42), "alice").Return(session, nil)
		mockRepo.EXPECT().StoreRefreshToken(gomock.Any(), gomock.Any()).Return(autherror.ErrStoreFailure)

		got, err := s.IssueSession(ctx, outcome)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, autherror.ErrTokenIssuance)
	})

	t.Run("rejected outcome", func(t *testing.T) {
		got, err := s.IssueSession(ctx, domain.Rejected())
		assert.Nil(t, got)
		assert.ErrorIs(t, err, autherror.ErrTokenIssuance)
	})
}

func TestAuthService_CurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, mockTokens := newTestService(ctrl)

	t.Run("empty cookie", func(t *testing.T) {
		_, err := s.CurrentUser("")
		assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	})

	t.Run("valid token", func(t *testing.T) {
		claims := &service.JWTCustomClaims{UserID: 42, Username: "alice"}
		mockTokens.EXPECT().VerifyAccessToken("token").Return(claims, nil)

		got, err := s.CurrentUser("token")
		require.NoError(t, err)
		assert.Equal(t, claims, got)
	})
}

func TestAuthService_Ready(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockRepo, _ := newTestService(ctrl)

	mockRepo.EXPECT().Ping(gomock.Any()).Return(nil)
	assert.NoError(t, s.Ready(context.Background()))

	mockRepo.EXPECT().Ping(gomock.Any()).Return(errors.New("down"))
	assert.Error(t, s.Ready(context.Background()))
}
