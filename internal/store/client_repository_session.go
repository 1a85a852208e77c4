package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/models"
)

// sessionRowID pins the session table to a single row: there is at most one
// signed-in user per client.
const sessionRowID = 1

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var sessionColumns = []string{
	"uid",
	"username",
	"email",
	"display_name",
	"first_name",
	"last_name",
	"profile_image",
	"bio",
	"followers_count",
	"following_count",
	"recipes_count",
	"refresh_token",
}

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionStore {
	return &sessionRepository{db: db, logger: logger}
}

func (r *sessionRepository) SaveSession(ctx context.Context, user models.UserView, refreshToken string) error {
	log := logger.FromContext(ctx)

	query, args, err := qb.Insert("session").
		Options("OR REPLACE").
		Columns(append([]string{"id"}, append(sessionColumns, "updated_at")...)...).
		Values(
			sessionRowID,
			user.UID,
			user.Username,
			user.Email,
			user.DisplayName,
			user.FirstName,
			user.LastName,
			user.ProfileImage,
			user.Bio,
			user.FollowersCount,
			user.FollowingCount,
			user.RecipesCount,
			refreshToken,
			time.Now(),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build save session query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("uid", user.UID).
			Msg("failed to execute session upsert")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (r *sessionRepository) LoadSession(ctx context.Context) (models.UserView, string, error) {
	log := logger.FromContext(ctx)

	query, args, err := qb.Select(sessionColumns...).
		From("session").
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return models.UserView{}, "", fmt.Errorf("build load session query: %w", err)
	}

	var user models.UserView
	var refreshToken string

	row := r.db.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(
		&user.UID,
		&user.Username,
		&user.Email,
		&user.DisplayName,
		&user.FirstName,
		&user.LastName,
		&user.ProfileImage,
		&user.Bio,
		&user.FollowersCount,
		&user.FollowingCount,
		&user.RecipesCount,
		&refreshToken,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.UserView{}, "", ErrSessionNotFound
		}
		log.Err(scanErr).
			Str("func", "sessionRepository.LoadSession").
			Msg("failed to scan session row")
		return models.UserView{}, "", fmt.Errorf("failed to scan session row: %w", scanErr)
	}

	return user, refreshToken, nil
}

func (r *sessionRepository) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := qb.Delete("session").
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build clear session query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.ClearSession").
			Msg("failed to execute session delete")
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

// SaveRefreshToken implements [identity.TokenStore]. The identity client
// calls it after every grant, which can happen before the session snapshot
// exists; in that case a minimal row is inserted and SaveSession fills in the
// profile later.
func (r *sessionRepository) SaveRefreshToken(ctx context.Context, uid, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := qb.Update("session").
		Set("uid", uid).
		Set("refresh_token", token).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build save refresh token query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveRefreshToken").
			Str("uid", uid).
			Msg("failed to execute refresh token update")
		return fmt.Errorf("failed to save refresh token: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	insert, args, err := qb.Insert("session").
		Columns("id", "uid", "refresh_token", "updated_at").
		Values(sessionRowID, uid, token, time.Now()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert refresh token query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, insert, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveRefreshToken").
			Str("uid", uid).
			Msg("failed to execute refresh token insert")
		return fmt.Errorf("failed to save refresh token: %w", err)
	}

	return nil
}

// LoadRefreshToken implements [identity.TokenStore]. A missing session row is
// not an error: it reports empty strings, meaning nothing is persisted.
func (r *sessionRepository) LoadRefreshToken(ctx context.Context) (string, string, error) {
	log := logger.FromContext(ctx)

	query, args, err := qb.Select("uid", "refresh_token").
		From("session").
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return "", "", fmt.Errorf("build load refresh token query: %w", err)
	}

	var uid, token string
	row := r.db.QueryRowContext(ctx, query, args...)
	if scanErr := row.Scan(&uid, &token); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return "", "", nil
		}
		log.Err(scanErr).
			Str("func", "sessionRepository.LoadRefreshToken").
			Msg("failed to scan refresh token row")
		return "", "", fmt.Errorf("failed to scan refresh token row: %w", scanErr)
	}

	return uid, token, nil
}

func (r *sessionRepository) ClearRefreshToken(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := qb.Update("session").
		Set("refresh_token", "").
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build clear refresh token query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.ClearRefreshToken").
			Msg("failed to execute refresh token clear")
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}

	return nil
}
