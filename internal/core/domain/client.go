package domain

import "time"

// Client is a customer of the practice. Its ID is derived from the name
// (see ClientIDFromName) and at most one active client may hold an ID.
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	DateAdded string
	State     State
	CreatedAt time.Time
	UpdatedAt time.Time
}
