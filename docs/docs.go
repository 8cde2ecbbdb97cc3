// Package docs registers the OpenAPI document served by gin-swagger.
// Regenerate with: swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/submissions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Read one submission by query (staff only)",
                "operationId": "findSubmission",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Submission ID", "name": "submissionId", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SubmissionDTO"}},
                    "400": {"description": "submissionId missing", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "No session", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Not an active admin", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "No such submission", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Validates and stores a service or compliance form. Retries carrying the same Idempotency-Key return the original id.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Intake"],
                "summary": "Submit a service form",
                "operationId": "createSubmission",
                "parameters": [
                    {"type": "string", "description": "Client retry token", "name": "Idempotency-Key", "in": "header"},
                    {"description": "Form payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SubmissionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.SubmitResponse"}},
                    "400": {"description": "Malformed body or failed validation", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/submissions/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Read one submission (staff only)",
                "operationId": "getSubmission",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Submission ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SubmissionDTO"}},
                    "401": {"description": "No session", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Not an active admin", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "No such submission", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/contacts": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Intake"],
                "summary": "Submit the contact form",
                "operationId": "createContact",
                "parameters": [
                    {"type": "string", "description": "Client retry token", "name": "Idempotency-Key", "in": "header"},
                    {"description": "Contact payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ContactRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.SubmitResponse"}},
                    "400": {"description": "Malformed body or failed validation", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/services": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "List published services",
                "operationId": "listServices",
                "parameters": [
                    {"type": "string", "description": "Return 304 if ETag matches", "name": "If-None-Match", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ListServicesResponse"}, "headers": {"ETag": {"type": "string", "description": "Weak ETag for current catalog"}}},
                    "304": {"description": "Not Modified"},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/services/featured": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "List featured services",
                "operationId": "listFeaturedServices",
                "parameters": [
                    {"maximum": 4, "minimum": 1, "type": "integer", "default": 4, "description": "Max items", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ListServicesResponse"}},
                    "304": {"description": "Not Modified"},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/services/slugs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "List published service slugs",
                "operationId": "listServiceSlugs",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SlugsResponse"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/services/search": {
            "get": {
                "description": "Ranks published services by word overlap with q across title, descriptions, content and feature lists.",
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Search published services",
                "operationId": "searchServices",
                "parameters": [
                    {"type": "string", "description": "Search text", "name": "q", "in": "query", "required": true},
                    {"maximum": 20, "minimum": 1, "type": "integer", "default": 5, "description": "Max items", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SearchServicesResponse"}},
                    "400": {"description": "Missing q", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/services/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Get a service by slug",
                "operationId": "getService",
                "parameters": [
                    {"type": "string", "description": "Service slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ServiceDTO"}},
                    "404": {"description": "Service not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/blog/posts": {
            "get": {
                "description": "Newest first. With category, returns that category's posts (default limit 3).",
                "produces": ["application/json"],
                "tags": ["Content"],
                "summary": "List published blog posts",
                "operationId": "listBlogPosts",
                "parameters": [
                    {"type": "string", "description": "Category filter", "name": "category", "in": "query"},
                    {"type": "integer", "description": "Max items, 0 for all", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ListPostsResponse"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/blog/posts/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Content"],
                "summary": "Get a published blog post",
                "operationId": "getBlogPost",
                "parameters": [
                    {"type": "string", "description": "Post slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.BlogPostDTO"}},
                    "404": {"description": "Post not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/blog/authors/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Content"],
                "summary": "Get a blog author by name",
                "operationId": "getBlogAuthor",
                "parameters": [
                    {"type": "string", "example": "Thandi Mokoena", "description": "Author name, matched exactly", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.AuthorDTO"}},
                    "404": {"description": "Author not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/blog/slugs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Content"],
                "summary": "List published blog slugs",
                "operationId": "listBlogSlugs",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SlugsResponse"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/testimonials": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Content"],
                "summary": "List testimonials",
                "operationId": "listTestimonials",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ListTestimonialsResponse"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string", "example": "123e4567-e89b-12d3-a456-426614174000"},
                "code": {"type": "string", "example": "validation_failed"},
                "error": {"type": "string", "example": "missing required fields: email"},
                "missing": {"type": "array", "items": {"type": "string"}, "example": ["email"]},
                "invalid": {"type": "array", "items": {"type": "string"}, "example": ["formType"]}
            }
        },
        "handlers.SubmitResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "message": {"type": "string", "example": "Form submitted successfully. We will review and contact you soon."},
                "submissionId": {"type": "string", "example": "3f0c2a1e-8a55-4b8e-9d1a-0b6f5c2e7d11"}
            }
        },
        "handlers.SubmissionRequest": {
            "type": "object",
            "properties": {
                "formType": {"type": "string", "example": "icasa-type-approvals"},
                "serviceId": {"type": "string", "example": "icasa-type-approvals"},
                "serviceName": {"type": "string", "example": "ICASA Type Approvals"},
                "fullName": {"type": "string", "example": "Jane Doe"},
                "email": {"type": "string", "example": "jane@example.co.za"},
                "phone": {"type": "string", "example": "+27 82 555 1234"},
                "company": {"type": "string", "example": "Acme Radio (Pty) Ltd"},
                "industry": {"type": "string", "example": "Telecommunications"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "handlers.ContactRequest": {
            "type": "object",
            "properties": {
                "service": {"type": "string", "example": "NRCS LOA"},
                "fullName": {"type": "string", "example": "Jane Doe"},
                "email": {"type": "string", "example": "jane@example.co.za"},
                "phone": {"type": "string", "example": "+27 82 555 1234"},
                "message": {"type": "string", "example": "Please call me about a type approval."}
            }
        },
        "handlers.SubmissionDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "formType": {"type": "string"},
                "status": {"type": "string"},
                "serviceId": {"type": "string"},
                "serviceName": {"type": "string"},
                "fullName": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "company": {"type": "string"},
                "industry": {"type": "string"},
                "details": {"type": "object"},
                "internalNotes": {"type": "string"},
                "assignedTo": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"},
                "completedAt": {"type": "string"}
            }
        },
        "handlers.SEO": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "keywords": {"type": "string"}
            }
        },
        "handlers.ServiceDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "slug": {"type": "string"},
                "title": {"type": "string"},
                "href": {"type": "string"},
                "category": {"type": "string"},
                "description": {"type": "string"},
                "shortDescription": {"type": "string"},
                "icon": {"type": "string"},
                "orderIndex": {"type": "integer"},
                "content": {"type": "string"},
                "features": {"type": "array", "items": {"type": "string"}},
                "requirements": {"type": "array", "items": {"type": "string"}},
                "includes": {"type": "array", "items": {"type": "string"}},
                "published": {"type": "boolean"},
                "featured": {"type": "boolean"},
                "processingTime": {"type": "string"},
                "pricing": {"type": "number"},
                "image": {"type": "string"},
                "thumbnail": {"type": "string"},
                "seo": {"$ref": "#/definitions/handlers.SEO"},
                "pricingPlans": {"type": "array", "items": {"type": "object"}},
                "processSteps": {"type": "array", "items": {"type": "object"}},
                "successStory": {"type": "object"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "handlers.ListServicesResponse": {
            "type": "object",
            "properties": {
                "services": {"type": "array", "items": {"$ref": "#/definitions/handlers.ServiceDTO"}}
            }
        },
        "handlers.SearchServicesResponse": {
            "type": "object",
            "properties": {
                "query": {"type": "string", "example": "type approval"},
                "services": {"type": "array", "items": {"$ref": "#/definitions/handlers.ServiceDTO"}}
            }
        },
        "handlers.BlogPostDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "slug": {"type": "string"},
                "excerpt": {"type": "string"},
                "content": {"type": "string"},
                "category": {"type": "string"},
                "tags": {"type": "string"},
                "readTime": {"type": "string"},
                "seo": {"$ref": "#/definitions/handlers.SEO"},
                "featuredImage": {"type": "string"},
                "thumbnail": {"type": "string"},
                "published": {"type": "boolean"},
                "publishedAt": {"type": "string"},
                "featured": {"type": "boolean"},
                "authorId": {"type": "string"},
                "authorName": {"type": "string"},
                "viewsCount": {"type": "integer"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "handlers.ListPostsResponse": {
            "type": "object",
            "properties": {
                "posts": {"type": "array", "items": {"$ref": "#/definitions/handlers.BlogPostDTO"}}
            }
        },
        "handlers.AuthorDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "bio": {"type": "string"},
                "avatarUrl": {"type": "string"}
            }
        },
        "handlers.TestimonialDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "postUrl": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "handlers.ListTestimonialsResponse": {
            "type": "object",
            "properties": {
                "testimonials": {"type": "array", "items": {"$ref": "#/definitions/handlers.TestimonialDTO"}}
            }
        },
        "handlers.SlugsResponse": {
            "type": "object",
            "properties": {
                "slugs": {"type": "array", "items": {"type": "string"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Staff session token: Bearer <token>",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Bilacert API",
	Description:      "Compliance intake, staff submission reads, and the public service catalog.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
