package models

import "time"

// Transaction is a money transfer recorded for a user. Amount keeps the
// storage type (double precision); no sign or range policy is applied here.
type Transaction struct {
	ID        int64     `json:"id"`
	Amount    float64   `json:"amount"`
	Recipient string    `json:"recipient"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
