package models

import "time"

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleEmployer UserRole = "employer"
	UserRoleUser     UserRole = "user"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r UserRole) bool {
	return r == UserRoleAdmin || r == UserRoleEmployer || r == UserRoleUser
}

type User struct {
	BaseModel
	Name           string     `gorm:"not null" json:"name"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string     `gorm:"not null" json:"-"`
	Role           UserRole   `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	OrganizationID *uint      `gorm:"index" json:"organizationId"`
	LastLogin      *time.Time `json:"lastLogin"`

	// Relations
	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}
