package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Service is a catalog entry describing one licensing or certification
// offering. The intake pipeline only reads it to denormalise a name onto a
// FormSubmission.
type Service struct {
	ID               string  `gorm:"type:char(36);primaryKey"`
	Slug             string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Title            string  `gorm:"type:varchar(255);not null"`
	Href             string  `gorm:"type:varchar(255)"`
	Category         *string `gorm:"type:varchar(128);index"`
	Description      *string `gorm:"type:text"`
	ShortDescription *string `gorm:"type:text"`
	Icon             *string `gorm:"type:varchar(128)"`
	OrderIndex       int     `gorm:"not null;default:0;index"`
	Content          *string `gorm:"type:text"`
	Features         datatypes.JSON
	Requirements     datatypes.JSON
	Includes         datatypes.JSON
	Published        bool `gorm:"not null;default:false;index"`
	Featured         bool `gorm:"not null;default:false"`
	ProcessingTime   *string
	Pricing          *float64
	Image            *string
	Thumbnail        *string
	SEOTitle         *string `gorm:"column:seo_title"`
	SEODescription   *string `gorm:"column:seo_description"`
	SEOKeywords      *string `gorm:"column:seo_keywords"`
	PricingPlans     datatypes.JSON
	ProcessSteps     datatypes.JSON
	SuccessStory     datatypes.JSON
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName returns the database table name for Service.
func (Service) TableName() string { return "services" }

// PricingPlan is one element of Service.PricingPlans.
type PricingPlan struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
	Description string   `json:"description,omitempty"`
}

// ProcessStep is one element of Service.ProcessSteps.
type ProcessStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SuccessStory is the shape stored in Service.SuccessStory.
type SuccessStory struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}
