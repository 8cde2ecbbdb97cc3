package domain

import "time"

// BlogPost is a published or draft article shown on the blog pages.
type BlogPost struct {
	ID             string  `gorm:"type:varchar(64);primaryKey"`
	Title          string  `gorm:"type:varchar(255);not null"`
	Slug           string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Excerpt        *string `gorm:"type:text"`
	Content        string  `gorm:"type:text;not null"`
	Category       *string `gorm:"type:varchar(128);index"`
	Tags           *string `gorm:"type:varchar(255)"`
	ReadTime       *string `gorm:"type:varchar(32)"`
	SEOTitle       *string `gorm:"column:seo_title;type:varchar(255)"`
	SEODescription *string `gorm:"column:seo_description;type:varchar(255)"`
	SEOKeywords    *string `gorm:"column:seo_keywords;type:varchar(255)"`
	FeaturedImage  *string `gorm:"type:varchar(255)"`
	Thumbnail      *string `gorm:"type:varchar(255)"`
	Published      bool    `gorm:"not null;default:false;index"`
	PublishedAt    *time.Time
	Featured       bool    `gorm:"not null;default:false"`
	AuthorID       *string `gorm:"type:varchar(64)"`
	AuthorName     *string `gorm:"type:varchar(255)"`
	ViewsCount     int     `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName returns the database table name for BlogPost.
func (BlogPost) TableName() string { return "blog_posts" }

// Testimonial points at an external social post embedded on the home page.
type Testimonial struct {
	ID        string `gorm:"type:char(36);primaryKey"`
	PostURL   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName returns the database table name for Testimonial.
func (Testimonial) TableName() string { return "testimonials" }

// Author is the profile shown under a post written by that person.
type Author struct {
	ID        string  `gorm:"type:char(36);primaryKey"`
	Name      string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Bio       *string `gorm:"type:text"`
	AvatarURL *string `gorm:"column:avatar_url;type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the database table name for Author.
func (Author) TableName() string { return "authors" }
