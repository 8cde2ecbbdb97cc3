package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bilacert/bilacert-api/internal/domain"
)

// GetUserByAuthID fetches the staff profile linked to a session subject.
func GetUserByAuthID(ctx context.Context, db *gorm.DB, authID string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("auth_id = ?", authID).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts u with every column written, so zero values such as
// IsActive=false are stored as given.
func CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) error {
	now := time.Now().UTC()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return translate(db.WithContext(ctx).Select("*").Create(u).Error)
}

// UpsertUserRole creates or updates the profile for authID with role, email
// and active flag. It returns the stored row.
func UpsertUserRole(ctx context.Context, db *gorm.DB, authID, email string, role domain.Role, active bool) (*domain.User, error) {
	now := time.Now().UTC()
	u := &domain.User{
		ID:        uuid.NewString(),
		AuthID:    authID,
		Email:     email,
		Role:      role,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "auth_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "role", "is_active", "updated_at"}),
	}).Create(u).Error
	if err != nil {
		return nil, err
	}
	return GetUserByAuthID(ctx, db, authID)
}
