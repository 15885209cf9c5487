package domain

import "time"

// User represents a registered customer
type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile returns the public part of the user
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}

// UserProfile public user data stored in a client session
type UserProfile struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Session client-side session: token plus user profile
type Session struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}

// IsAuthenticated returns true when both token and user are present
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != "" && s.User != nil
}
