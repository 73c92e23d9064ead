package response

import (
	"time"

	"rental-booking/internal/data/entity"
)

type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AdminProfileResponse is the admin profile without the password hash.
type AdminProfileResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email,omitempty"`
	Name      string     `json:"name,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

func AdminProfileToResponse(p *entity.AdminProfile) AdminProfileResponse {
	return AdminProfileResponse{
		ID:        p.ID,
		Username:  p.Username,
		Email:     p.Email,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		LastLogin: p.LastLogin,
	}
}
