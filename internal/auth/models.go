package auth

import "time"

// User is an account in the mock directory. Passwords are not stored or
// checked; the directory simulates a backend for demo deployments.
type User struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Department   string   `json:"department,omitempty"`
	GroupIDs     []string `json:"groupIds,omitempty"`
	ProfileImage string   `json:"profileImage,omitempty"`
}

// Group is a team that users join with a shared passcode.
type Group struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Passcode   string    `json:"passcode"`
	Department string    `json:"department"`
	CreatedBy  string    `json:"createdBy"`
	Members    []User    `json:"members"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ProfilePatch carries the updatable profile fields; nil means unchanged.
type ProfilePatch struct {
	Name         *string `json:"name"`
	Role         *string `json:"role"`
	Department   *string `json:"department"`
	ProfileImage *string `json:"profileImage"`
}

// Session is the result of a successful login or signup.
type Session struct {
	User   User    `json:"user"`
	Groups []Group `json:"groups"`
	Token  string  `json:"token"`
}
