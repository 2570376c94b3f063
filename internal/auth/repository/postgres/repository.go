package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/AnthoniusHendriyanto/chat-login/internal/auth/domain"
	autherror "github.com/AnthoniusHendriyanto/chat-login/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	findByEmailQuery    = `SELECT id, password_hash FROM users WHERE email = $1`
	findByUsernameQuery = `SELECT id, password_hash FROM users WHERE username = $1`
)

// DBTX is the subset of *pgxpool.Pool the repository needs.
type DBTX interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

type PostgresRepository struct {
	db DBTX
}

func NewPostgresRepository(db DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func lookupQuery(kind domain.IdentifierKind) string {
	if kind == domain.IdentifierEmail {
		return findByEmailQuery
	}
	return findByUsernameQuery
}

func (r *PostgresRepository) FindByIdentifier(ctx context.Context, id domain.Identifier) (*domain.Account, error) {
	var acc domain.Account
	err := r.db.QueryRow(ctx, lookupQuery(id.Kind), id.Value).Scan(&acc.ID, &acc.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: find account by %s: %w", autherror.ErrStoreFailure, id.Kind, err)
	}

	return &acc, nil
}

func (r *PostgresRepository) StoreRefreshToken(ctx context.Context, rt *domain.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (id, user_id, token, expires_at, created_at, revoked)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, rt.ID, rt.UserID, rt.Token, rt.ExpiresAt, rt.CreatedAt, rt.Revoked)
	if err != nil {
		return fmt.Errorf("%w: store refresh token: %w", autherror.ErrStoreFailure, err)
	}
	return nil
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
