package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_account_repository.go -package=mocks github.com/AnthoniusHendriyanto/chat-login/internal/auth/domain AccountRepository

type AccountRepository interface {
	// FindByIdentifier returns nil, nil when no account matches.
	FindByIdentifier(ctx context.Context, id Identifier) (*Account, error)
	StoreRefreshToken(ctx context.Context, rt *RefreshToken) error
	Ping(ctx context.Context) error
}
