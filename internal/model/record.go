package model

import "time"

// Record is a single keyed JSON document owned by a user.
type Record struct {
	Key       string `gorm:"primaryKey;column:record_key"`
	UserID    uint   `gorm:"index"`
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
