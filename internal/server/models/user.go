package models

import "time"

// User is an account record. The password column holds a bcrypt hash and is
// excluded from JSON so no handler can leak it in a response.
type User struct {
	ID           int64         `json:"id"`
	Email        string        `json:"email"`
	Password     string        `json:"-"`
	Name         string        `json:"name"`
	CreatedAt    time.Time     `json:"created_at"`
	Transactions []Transaction `json:"transactions"`
}
