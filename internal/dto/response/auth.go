package response

import (
	"time"

	"bakerist/internal/data/entity"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
	ContactNo string          `json:"contact_no,omitempty"`
	Barangay  string          `json:"barangay,omitempty"`
	Sitio     string          `json:"sitio,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type ClaimsResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Helper converters

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		ContactNo: user.ContactNo,
		Barangay:  user.Barangay,
		Sitio:     user.Sitio,
		CreatedAt: user.CreatedAt,
	}
}
