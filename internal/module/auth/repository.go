package auth

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/hrstack/hrms/internal/domain"
	"github.com/hrstack/hrms/internal/pkg"
)

// userRepository implements domain.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository backed by the given database.
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new operator account. The uniqueness check and the insert
// run in one transaction so two concurrent registrations cannot both pass the
// email check.
func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	err := pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.NewAppError(domain.CodeAlreadyExists, "email already registered", nil)
		}
		return tx.Create(u).Error
	})
	if err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		if isDuplicateKeyError(err) {
			return domain.NewAppError(domain.CodeAlreadyExists, "email already registered", err)
		}
		return domain.NewAppError(domain.CodeData, "error creating user", err)
	}
	return nil
}

// GetByEmail retrieves an operator account by email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewAppError(domain.CodeNotFound, "user not found", nil)
		}
		return nil, domain.NewAppError(domain.CodeUnavailable, "error retrieving user", err)
	}
	return &u, nil
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. This is needed because not all GORM dialectors translate
// driver-level errors to gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
