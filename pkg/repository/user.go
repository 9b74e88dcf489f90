package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/frazabot/fraza/pkg/domain"
)

// UserRepository handles user-related database operations
type UserRepository struct {
	db       *sqlx.DB
	defaults Defaults
	now      func() time.Time // injectable clock for daily reset tests
}

// userSQL represents a user for SQL operations
type userSQL struct {
	UserID     int64     `db:"user_id"`
	SourceLang string    `db:"source_lang"`
	TargetLang string    `db:"target_lang"`
	DailyQuota int       `db:"daily_quota"`
	SentToday  int       `db:"sent_today"`
	LastReset  *string   `db:"last_reset"`
	CreatedAt  time.Time `db:"created_at"`
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *sqlx.DB, defaults Defaults) *UserRepository {
	return &UserRepository{db: database, defaults: defaults, now: time.Now}
}

// today returns the current UTC calendar date as stored in last_reset
func (r *UserRepository) today() string {
	return r.now().UTC().Format("2006-01-02")
}

// EnsureUser inserts a default record for the user if absent. Idempotent,
// a single atomic statement.
func (r *UserRepository) EnsureUser(ctx context.Context, userID int64) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO users (user_id, source_lang, target_lang, daily_quota, sent_today, last_reset)
			VALUES (?, ?, ?, ?, 0, ?)
			ON CONFLICT(user_id) DO NOTHING
		`
		_, err := r.db.ExecContext(ctx, query, userID,
			r.defaults.SourceLang, r.defaults.TargetLang, r.defaults.DailyQuota, r.today())
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("ensure user: %w", err)}
		}
		return nil
	})
}

// GetSettings returns the user's current record. When the record is absent it
// creates the default one first and returns that - a read that mutates storage
// on first access, kept deliberately to match the command layer's expectations.
func (r *UserRepository) GetSettings(ctx context.Context, userID int64) (*domain.UserPreference, error) {
	var sqlUser userSQL
	err := r.db.GetContext(ctx, &sqlUser, "SELECT * FROM users WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		if err := r.EnsureUser(ctx, userID); err != nil {
			return nil, err
		}
		if err := r.db.GetContext(ctx, &sqlUser, "SELECT * FROM users WHERE user_id = ?", userID); err != nil {
			return nil, fmt.Errorf("get settings after create: %w", err)
		}
		return r.toDomainUser(&sqlUser), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return r.toDomainUser(&sqlUser), nil
}

// SetLanguages updates whichever of source/target is non-empty. Calling it
// with both empty is a legal no-op. Codes are not validated here, the command
// layer checks them against the language registry first.
func (r *UserRepository) SetLanguages(ctx context.Context, userID int64, source, target string) error {
	if source == "" && target == "" {
		return nil
	}

	query := "UPDATE users SET "
	args := []any{}
	switch {
	case source != "" && target != "":
		query += "source_lang = ?, target_lang = ?"
		args = append(args, source, target)
	case source != "":
		query += "source_lang = ?"
		args = append(args, source)
	default:
		query += "target_lang = ?"
		args = append(args, target)
	}
	query += " WHERE user_id = ?"
	args = append(args, userID)

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set languages: %w", err)}
		}
		return nil
	})
}

// SetQuota overwrites the user's daily quota. Range validation is the command
// layer's job, the store performs no check.
func (r *UserRepository) SetQuota(ctx context.Context, userID int64, quota int) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, "UPDATE users SET daily_quota = ? WHERE user_id = ?", quota, userID); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set quota: %w", err)}
		}
		return nil
	})
}

// ResetUsageIfNewDay zeroes sent_today and stamps last_reset when the stored
// date is not today's UTC date. A single guarded UPDATE, no-op on the same day.
// NULL last_reset counts as "needs reset".
func (r *UserRepository) ResetUsageIfNewDay(ctx context.Context, userID int64) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE users
			SET sent_today = 0, last_reset = ?
			WHERE user_id = ? AND (last_reset IS NULL OR last_reset <> ?)
		`
		today := r.today()
		if _, err := r.db.ExecContext(ctx, query, today, userID, today); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("reset usage: %w", err)}
		}
		return nil
	})
}

// IncrementUsage bumps the daily counter. Called only after the audio reply
// was delivered.
func (r *UserRepository) IncrementUsage(ctx context.Context, userID int64) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, "UPDATE users SET sent_today = sent_today + 1 WHERE user_id = ?", userID); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("increment usage: %w", err)}
		}
		return nil
	})
}

// CountUsers returns the total number of user records
func (r *UserRepository) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM users"); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// TotalSentToday returns the sum of usage counters stamped with today's date
func (r *UserRepository) TotalSentToday(ctx context.Context) (int, error) {
	var total int
	query := "SELECT COALESCE(SUM(sent_today), 0) FROM users WHERE last_reset = ?"
	if err := r.db.GetContext(ctx, &total, query, r.today()); err != nil {
		return 0, fmt.Errorf("total sent today: %w", err)
	}
	return total, nil
}

// toDomainUser converts SQL representation to domain model
func (r *UserRepository) toDomainUser(u *userSQL) *domain.UserPreference {
	user := &domain.UserPreference{
		UserID:     u.UserID,
		SourceLang: u.SourceLang,
		TargetLang: u.TargetLang,
		DailyQuota: u.DailyQuota,
		SentToday:  u.SentToday,
		CreatedAt:  u.CreatedAt,
	}
	if u.LastReset != nil {
		user.LastReset = *u.LastReset
	}
	return user
}
