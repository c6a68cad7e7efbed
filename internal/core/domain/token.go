package domain

import "time"

// RefreshToken is one active session for a user. Rotation always replaces
// the row (delete then insert); a refresh token is never updated in place.
type RefreshToken struct {
	ID        int64
	Token     string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the stored expiry has passed at the given instant.
func (t RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// ResetPasswordToken is a single-use credential-recovery record. Once Used
// flips to true the row is permanently inert; it is kept (not deleted) so a
// replayed token is distinguishable from one that never existed.
type ResetPasswordToken struct {
	ID        int64
	Token     string
	UserID    int64
	Used      bool
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the stored expiry has passed at the given instant.
func (t ResetPasswordToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
