package types

import "time"

type Prayer struct {
	ID           int64      `db:"id" json:"id"`
	CategoryID   int64      `db:"category_id" json:"categoryId"`
	UserID       int64      `db:"user_id" json:"userId"`
	Title        string     `db:"title" json:"title"`
	Description  string     `db:"description" json:"description"`
	IsAnswered   bool       `db:"is_answered" json:"isAnswered"`
	DateCreated  time.Time  `db:"date_created" json:"dateCreated"`
	DateAnswered *time.Time `db:"date_answered" json:"dateAnswered"`
	Notes        *string    `db:"notes" json:"notes"`
}

// NewPrayer carries validated input for a prayer insert.
type NewPrayer struct {
	CategoryID  int64
	UserID      int64
	Title       string
	Description string
	Notes       *string
}

// PrayerUpdate carries validated input for a full-field prayer update.
type PrayerUpdate struct {
	ID          int64
	UserID      int64
	CategoryID  int64
	Title       string
	Description string
	Notes       *string
}
