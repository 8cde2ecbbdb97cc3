package domain

import "time"

// User is a staff profile. AuthID links it to the session subject issued by
// the auth layer; Role decides what the caller may read.
type User struct {
	ID        string  `gorm:"type:char(36);primaryKey"`
	AuthID    string  `gorm:"type:varchar(64);not null;uniqueIndex"`
	Email     string  `gorm:"type:varchar(255);not null"`
	FirstName *string `gorm:"type:varchar(128)"`
	LastName  *string `gorm:"type:varchar(128)"`
	Role      Role    `gorm:"type:varchar(16);not null;default:'viewer'"`
	IsActive  bool    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }
