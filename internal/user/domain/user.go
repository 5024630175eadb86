package domain

import "time"

type ID string

type User struct {
	ID           ID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
