package handlers

import (
	"time"

	"gorm.io/datatypes"

	"github.com/bilacert/bilacert-api/internal/domain"
)

// The API speaks camelCase; rows stay snake_case. Mapping is explicit so a
// column rename never silently changes the wire format.

// SubmitResponse is returned with 201 from both intake endpoints.
type SubmitResponse struct {
	Success      bool   `json:"success" example:"true"`
	Message      string `json:"message" example:"Form submitted successfully. We will review and contact you soon."`
	SubmissionID string `json:"submissionId" example:"3f0c2a1e-8a55-4b8e-9d1a-0b6f5c2e7d11"`
}

// SubmissionDTO is the full form_submissions row as seen by staff.
type SubmissionDTO struct {
	ID            string         `json:"id"`
	FormType      string         `json:"formType"`
	Status        string         `json:"status"`
	ServiceID     *string        `json:"serviceId"`
	ServiceName   *string        `json:"serviceName"`
	FullName      string         `json:"fullName"`
	Email         string         `json:"email"`
	Phone         *string        `json:"phone"`
	Company       *string        `json:"company"`
	Industry      *string        `json:"industry"`
	Details       datatypes.JSON `json:"details" swaggertype:"object"`
	InternalNotes *string        `json:"internalNotes"`
	AssignedTo    *string        `json:"assignedTo"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	CompletedAt   *time.Time     `json:"completedAt"`
}

func toSubmissionDTO(s *domain.FormSubmission) SubmissionDTO {
	return SubmissionDTO{
		ID:            s.ID,
		FormType:      string(s.FormType),
		Status:        string(s.Status),
		ServiceID:     s.ServiceID,
		ServiceName:   s.ServiceName,
		FullName:      s.FullName,
		Email:         s.Email,
		Phone:         s.Phone,
		Company:       s.Company,
		Industry:      s.Industry,
		Details:       s.Details,
		InternalNotes: s.InternalNotes,
		AssignedTo:    s.AssignedTo,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		CompletedAt:   s.CompletedAt,
	}
}

// SEO groups the search metadata shared by services and posts.
type SEO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Keywords    *string `json:"keywords,omitempty"`
}

// ServiceDTO is a catalog entry.
type ServiceDTO struct {
	ID               string         `json:"id"`
	Slug             string         `json:"slug"`
	Title            string         `json:"title"`
	Href             string         `json:"href"`
	Category         *string        `json:"category,omitempty"`
	Description      *string        `json:"description,omitempty"`
	ShortDescription *string        `json:"shortDescription,omitempty"`
	Icon             *string        `json:"icon,omitempty"`
	OrderIndex       int            `json:"orderIndex"`
	Content          *string        `json:"content,omitempty"`
	Features         datatypes.JSON `json:"features,omitempty" swaggertype:"array,string"`
	Requirements     datatypes.JSON `json:"requirements,omitempty" swaggertype:"array,string"`
	Includes         datatypes.JSON `json:"includes,omitempty" swaggertype:"array,string"`
	Published        bool           `json:"published"`
	Featured         bool           `json:"featured"`
	ProcessingTime   *string        `json:"processingTime,omitempty"`
	Pricing          *float64       `json:"pricing,omitempty"`
	Image            *string        `json:"image,omitempty"`
	Thumbnail        *string        `json:"thumbnail,omitempty"`
	SEO              SEO            `json:"seo"`
	PricingPlans     datatypes.JSON `json:"pricingPlans,omitempty" swaggertype:"array,object"`
	ProcessSteps     datatypes.JSON `json:"processSteps,omitempty" swaggertype:"array,object"`
	SuccessStory     datatypes.JSON `json:"successStory,omitempty" swaggertype:"object"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

func toServiceDTO(s *domain.Service) ServiceDTO {
	return ServiceDTO{
		ID:               s.ID,
		Slug:             s.Slug,
		Title:            s.Title,
		Href:             s.Href,
		Category:         s.Category,
		Description:      s.Description,
		ShortDescription: s.ShortDescription,
		Icon:             s.Icon,
		OrderIndex:       s.OrderIndex,
		Content:          s.Content,
		Features:         s.Features,
		Requirements:     s.Requirements,
		Includes:         s.Includes,
		Published:        s.Published,
		Featured:         s.Featured,
		ProcessingTime:   s.ProcessingTime,
		Pricing:          s.Pricing,
		Image:            s.Image,
		Thumbnail:        s.Thumbnail,
		SEO:              SEO{Title: s.SEOTitle, Description: s.SEODescription, Keywords: s.SEOKeywords},
		PricingPlans:     s.PricingPlans,
		ProcessSteps:     s.ProcessSteps,
		SuccessStory:     s.SuccessStory,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func toServiceDTOs(in []domain.Service) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(in))
	for i := range in {
		out = append(out, toServiceDTO(&in[i]))
	}
	return out
}

// BlogPostDTO is a published article.
type BlogPostDTO struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       *string    `json:"excerpt,omitempty"`
	Content       string     `json:"content"`
	Category      *string    `json:"category,omitempty"`
	Tags          *string    `json:"tags,omitempty"`
	ReadTime      *string    `json:"readTime,omitempty"`
	SEO           SEO        `json:"seo"`
	FeaturedImage *string    `json:"featuredImage,omitempty"`
	Thumbnail     *string    `json:"thumbnail,omitempty"`
	Published     bool       `json:"published"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
	Featured      bool       `json:"featured"`
	AuthorID      *string    `json:"authorId,omitempty"`
	AuthorName    *string    `json:"authorName,omitempty"`
	ViewsCount    int        `json:"viewsCount"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func toBlogPostDTO(p *domain.BlogPost) BlogPostDTO {
	return BlogPostDTO{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		Content:       p.Content,
		Category:      p.Category,
		Tags:          p.Tags,
		ReadTime:      p.ReadTime,
		SEO:           SEO{Title: p.SEOTitle, Description: p.SEODescription, Keywords: p.SEOKeywords},
		FeaturedImage: p.FeaturedImage,
		Thumbnail:     p.Thumbnail,
		Published:     p.Published,
		PublishedAt:   p.PublishedAt,
		Featured:      p.Featured,
		AuthorID:      p.AuthorID,
		AuthorName:    p.AuthorName,
		ViewsCount:    p.ViewsCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toBlogPostDTOs(in []domain.BlogPost) []BlogPostDTO {
	out := make([]BlogPostDTO, 0, len(in))
	for i := range in {
		out = append(out, toBlogPostDTO(&in[i]))
	}
	return out
}

// AuthorDTO is the profile shown under an author's posts.
type AuthorDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

func toAuthorDTO(a *domain.Author) AuthorDTO {
	return AuthorDTO{ID: a.ID, Name: a.Name, Bio: a.Bio, AvatarURL: a.AvatarURL}
}

// TestimonialDTO points at an embeddable social post.
type TestimonialDTO struct {
	ID        string    `json:"id"`
	PostURL   string    `json:"postUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func toTestimonialDTOs(in []domain.Testimonial) []TestimonialDTO {
	out := make([]TestimonialDTO, 0, len(in))
	for _, t := range in {
		out = append(out, TestimonialDTO{ID: t.ID, PostURL: t.PostURL, CreatedAt: t.CreatedAt})
	}
	return out
}

// SlugsResponse lists slugs for static path generation.
type SlugsResponse struct {
	Slugs []string `json:"slugs"`
}
