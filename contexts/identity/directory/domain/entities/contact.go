package entities

import "time"

// Email is a globally unique contact identifier. The address is always
// stored lowercased.
type Email struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Address    string    `json:"address"`
	IsPrimary  bool      `json:"is_primary"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// Phone is a globally unique E.164 contact identifier.
type Phone struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Number     string    `json:"number"`
	IsPrimary  bool      `json:"is_primary"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}
