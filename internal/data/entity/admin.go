package entity

import "time"

// AdminProfile is the single back-office account. The password hash is
// bcrypt and must never leave the server.
type AdminProfile struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"passwordHash"`
	Email        string     `json:"email,omitempty"`
	Name         string     `json:"name,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}
