package dto

import (
	"time"

	"navigator_backend/internal/models"
)

type RegisterRequest struct {
	Name         string `json:"name" binding:"required" validate:"required,min=2"`
	Email        string `json:"email" binding:"required" validate:"required,email"`
	Password     string `json:"password" binding:"required" validate:"required,min=8"`
	Organization string `json:"organization" validate:"omitempty,min=2"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type UpdateRoleRequest struct {
	Role models.UserRole `json:"role" binding:"required" validate:"required,oneof=admin employer user"`
}

// UserResponse is the user shape returned by the API. The password hash never
// leaves the service layer.
type UserResponse struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Role           models.UserRole `json:"role"`
	OrganizationID *uint           `json:"organizationId"`
	Organization   *OrgResponse    `json:"organization,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastLogin      *time.Time      `json:"lastLogin"`
}

type OrgResponse struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	SubscriptionType string `json:"subscriptionType"`
}

type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

// NewUserResponse maps a persisted user onto the wire shape.
func NewUserResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		OrganizationID: user.OrganizationID,
		CreatedAt:      user.CreatedAt,
		LastLogin:      user.LastLogin,
	}
	if user.Organization != nil {
		resp.Organization = &OrgResponse{
			ID:               user.Organization.ID,
			Name:             user.Organization.Name,
			SubscriptionType: user.Organization.SubscriptionType,
		}
	}
	return resp
}
