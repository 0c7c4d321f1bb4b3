package models

import "time"

// User is an entry of the user directory.
type User struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"fullName"`
	Role          Role      `json:"role"`
	ApproverLevel int       `json:"approverLevel"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Ref returns the reference of u embedded in responses.
func (u User) Ref() *UserRef {
	return &UserRef{ID: u.ID, FullName: u.FullName, Email: u.Email}
}

// UserRef is the resolved name of an audit actor.
type UserRef struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}
