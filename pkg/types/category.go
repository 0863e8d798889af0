package types

import "time"

// DefaultCategoryColor is applied when a create request omits color.
const DefaultCategoryColor = "#3B82F6"

type Category struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	Color     string    `db:"color" json:"color"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NewCategory carries validated input for a category insert.
type NewCategory struct {
	UserID int64
	Name   string
	Color  string
}

// CategoryUpdate carries validated input for a full-field category update.
type CategoryUpdate struct {
	ID     int64
	UserID int64
	Name   string
	Color  string
}
