// Package domain defines the persistence models for form submissions, the
// service catalog, staff users and site content. These types are mapped with
// GORM and use snake_case column names; the HTTP layer maps them to its own
// camelCase DTOs.
package domain

import (
	"time"

	"gorm.io/datatypes"
)

// FormSubmission is one inquiry captured by a public intake form.
//
// Fields:
//   - ID: UUID primary key, generated server side and never changed.
//   - FormType / FullName / Email: always present.
//   - Status: starts as "pending"; only staff tooling moves it.
//   - ServiceID / ServiceName: optional reference to a Service plus a name
//     snapshot taken at submission time (not kept in sync).
//   - Phone / Company / Industry / Details: optional, NULL when not provided.
//   - InternalNotes / AssignedTo / CompletedAt: staff-only, never set by intake.
type FormSubmission struct {
	ID            string           `gorm:"type:char(36);primaryKey"`
	FormType      FormType         `gorm:"type:varchar(64);not null;index:idx_submissions_type"`
	Status        SubmissionStatus `gorm:"type:varchar(32);not null;default:'pending';index:idx_submissions_status"`
	ServiceID     *string          `gorm:"type:varchar(64);index"`
	ServiceName   *string          `gorm:"type:varchar(255)"`
	FullName      string           `gorm:"type:varchar(255);not null"`
	Email         string           `gorm:"type:varchar(255);not null;index"`
	Phone         *string          `gorm:"type:varchar(64)"`
	Company       *string          `gorm:"type:varchar(255)"`
	Industry      *string          `gorm:"type:varchar(255)"`
	Details       datatypes.JSON
	InternalNotes *string `gorm:"type:text"`
	AssignedTo    *string `gorm:"type:varchar(64)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CompletedAt   *time.Time
}

// TableName returns the database table name for FormSubmission.
func (FormSubmission) TableName() string { return "form_submissions" }

// Contact is a row written by the legacy contact form. It has no status and
// no service reference; Service is free text chosen by the visitor.
type Contact struct {
	ID          string    `gorm:"type:char(36);primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Email       string    `gorm:"type:varchar(255);not null;index"`
	Phone       *string   `gorm:"type:varchar(64)"`
	Service     *string   `gorm:"type:varchar(255)"`
	Message     string    `gorm:"type:text;not null"`
	SubmittedAt time.Time `gorm:"not null"`
}

// TableName returns the database table name for Contact.
func (Contact) TableName() string { return "contacts" }
