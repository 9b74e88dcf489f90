package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) *Repositories {
	t.Helper()
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}
	defaults := Defaults{SourceLang: "ru", TargetLang: "en", DailyQuota: 5}

	repos, err := NewRepositories(context.Background(), cfg, defaults)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })

	require.NoError(t, repos.Ping(context.Background()))
	return repos
}

func TestUserRepository_EnsureUser(t *testing.T) {
	repos := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repos.User.EnsureUser(ctx, 42))

	user, err := repos.User.GetSettings(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.UserID)
	assert.Equal(t, "ru", user.SourceLang)
	assert.Equal(t, "en", user.TargetLang)
	assert.Equal(t, 5, user.DailyQuota)
	assert.Equal(t, 0, user.SentToday)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), user.LastReset)

	// idempotent - repeated call does not reset anything
	require.NoError(t, repos.User.IncrementUsage(ctx, 42))
	require.NoError(t, repos.User.EnsureUser(ctx, 42))

	user, err = repos.User.GetSettings(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 1, user.SentToday, "ensure on existing user must not touch the counter")
}

func TestUserRepository_GetSettings_CreatesOnMiss(t *testing.T) {
	repos := setupTestRepo(t)
	ctx := context.Background()

	// no EnsureUser call, GetSettings creates the default record itself
	user, err := repos.User.GetSettings(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "ru", user.SourceLang)
	assert.Equal(t, "en", user.TargetLang)
	assert.Equal(t, 5, user.DailyQuota)
	assert.Equal(t, 0, user.SentToday)

	count, err := repos.User.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "the read must have persisted the record")
}

func TestUserRepository_SetLanguages(t *testing.T) {
	repos := setupTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repos.User.EnsureUser(ctx, 1))

	// both
	require.NoError(t, repos.User.SetLanguages(ctx, 1, "de", "fr"))
	user, err := repos.User.GetSettings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "de", user.SourceLang)
	assert.Equal(t, "fr", user.TargetLang)

	// source only
	require.NoError(t, repos.User.SetLanguages(ctx, 1, "es", ""))
	user, err = repos.User.GetSettings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "es", user.SourceLang)
	assert.Equal(t, "fr", user.TargetLang)

	// target only
	require.NoError(t, repos.User.SetLanguages(ctx, 1, "", "it"))
	user, err = repos.User.GetSettings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "es", user.SourceLang)
	assert.Equal(t, "it", user.TargetLang)

	// neither - legal no-op
	require.NoError(t, repos.User.SetLanguages(ctx, 1, "", ""))
	user, err = repos.User.GetSettings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "es", user.SourceLang)
	assert.Equal(t, "it", user.TargetLang)
}

func TestUserRepository_SetQuota(t *testing.T) {
	repos := setupTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repos.User.EnsureUser(ctx, 1))

	require.NoError(t, repos.User.SetQuota(ctx, 1, 7))
	user, err := repos.User.GetSettings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, user.DailyQuota)
}

func TestUserRepository_ResetUsageIfNewDay(t *testing.T) {
	repos := setupTestRepo(t)
	ctx := context.Background()

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	repos.User.now = func() time.Time { return now }

	require.NoError(t, repos.User.EnsureUser(ctx, 1))
	require.NoError(t, repos.User.IncrementUsage(ctx, 1))
	require.NoError(t, repos.User.IncrementUsage(ctx, 1))

	// same day - no-op
	require.NoError(t, repos.User.ResetUsageIfNewDay(ctx, 1))
	user, err := repos.User.GetSettings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, user.SentToday)
	assert.Equal(t, "2026-08-30", user.LastReset)

	// next day - counter zeroed, date stamped
	repos.User.now = func() time.Time { return now.Add(24 * time.Hour) }
	require.NoError(t, repos.User.ResetUsageIfNewDay(ctx, 1))
	user, err = repos.User.GetSettings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, user.SentToday)
	assert.Equal(t, "2026-08-31", user.LastReset)

	// second call on the new day - no-op again
	require.NoError(t, repos.User.IncrementUsage(ctx, 1))
	require.NoError(t, repos.User.ResetUsageIfNewDay(ctx, 1))
	user, err = repos.User.GetSettings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, user.SentToday)
}

func TestUserRepository_ResetUsage_NullLastReset(t *testing.T) {
	repos := setupTestRepo(t)
	ctx := context.Background()

	// insert a row with NULL last_reset directly, as a legacy record would have
	_, err := repos.DB.ExecContext(ctx,
		"INSERT INTO users (user_id, source_lang, target_lang, daily_quota, sent_today, last_reset) VALUES (9, 'ru', 'en', 5, 3, NULL)")
	require.NoError(t, err)

	require.NoError(t, repos.User.ResetUsageIfNewDay(ctx, 9))
	user, err := repos.User.GetSettings(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, 0, user.SentToday, "NULL last_reset counts as needs-reset")
	assert.NotEmpty(t, user.LastReset)
}

func TestUserRepository_IncrementUsage(t *testing.T) {
	repos := setupTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repos.User.EnsureUser(ctx, 1))

	for i := 0; i < 3; i++ {
		require.NoError(t, repos.User.IncrementUsage(ctx, 1))
	}

	user, err := repos.User.GetSettings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, user.SentToday)
}

func TestUserRepository_Stats(t *testing.T) {
	repos := setupTestRepo(t)
	ctx := context.Background()

	count, err := repos.User.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, repos.User.EnsureUser(ctx, 1))
	require.NoError(t, repos.User.EnsureUser(ctx, 2))
	require.NoError(t, repos.User.IncrementUsage(ctx, 1))
	require.NoError(t, repos.User.IncrementUsage(ctx, 2))
	require.NoError(t, repos.User.IncrementUsage(ctx, 2))

	count, err = repos.User.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	total, err := repos.User.TotalSentToday(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}
