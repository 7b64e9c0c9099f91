package models

import "time"

// User represents a tracked individual and their exercise history.
type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Exercises []Exercise `json:"exercises,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// UserRef is the id/username projection returned by the list and create
// endpoints.
type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
