package domain

import "context"

// User is an HRMS operator account used for API authentication.
type User struct {
	AuditModel
	Name         string `gorm:"column:name;size:100;not null" json:"name"`
	Email        string `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;size:255" json:"-"`
	IsActive     string `gorm:"column:is_active;size:1;default:Y" json:"is_active"`
}

// TableName maps User onto the legacy HRMS table.
func (User) TableName() string {
	return "hrms_d_user"
}

// UserRepository defines the data access interface for operator accounts.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
}
