package model

import "time"

// User is a blog account. Email, login and password are free-form and
// optional; absent fields stay null on the wire.
type User struct {
	ID        int64     `json:"id"`
	Email     *string   `json:"email"`
	Login     *string   `json:"login"`
	Password  *string   `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
