// Package domain contains the core types shared between the storage,
// pipeline and bot layers.
package domain

import "time"

// UserPreference represents the per-user settings and daily usage record.
// One row exists per user, created lazily on first interaction.
type UserPreference struct {
	UserID     int64
	SourceLang string // language the base sentence is generated in
	TargetLang string // language of the translation and the audio
	DailyQuota int    // max sentences per UTC day, user-set within [1,100]
	SentToday  int    // sentences delivered since the last reset
	LastReset  string // UTC date "2006-01-02" of the last counter reset, empty if never
	CreatedAt  time.Time
}

// QuotaReached reports whether the user exhausted the daily allowance.
// The check runs against the stored pre-request value.
func (u *UserPreference) QuotaReached() bool {
	return u.SentToday >= u.DailyQuota
}
