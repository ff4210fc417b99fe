package models

import "time"

type Post struct {
	ID        int       `json:"id" db:"id"`
	UUID      string    `json:"uuid" db:"uuid"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	UserID    int       `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	User      *User     `json:"user,omitempty" db:"user"`
}
