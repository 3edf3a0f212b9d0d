package models

import (
	"time"
)

// Program represents one of the foundation's ongoing programs.
type Program struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title" validate:"required"`
	Description string    `json:"description"`
	ImageURL    string    `gorm:"size:500" json:"image_url"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewsPost represents a news article on the public site.
type NewsPost struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title" validate:"required"`
	Body        string    `json:"body"`
	ImageURL    string    `gorm:"size:500" json:"image_url"`
	PublishedAt time.Time `gorm:"index" json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Video represents an embedded video shown on the public site.
type Video struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title" validate:"required"`
	URL         string    `gorm:"size:500;not null" json:"url" validate:"required,url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TeamMember represents a person on the team page.
type TeamMember struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name" validate:"required"`
	Role      string    `gorm:"size:200" json:"role"`
	Bio       string    `json:"bio"`
	PhotoURL  string    `gorm:"size:500" json:"photo_url"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Course represents a university course the foundation participates in.
type Course struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title" validate:"required"`
	University  string    `gorm:"size:200" json:"university"`
	Description string    `json:"description"`
	URL         string    `gorm:"size:500" json:"url" validate:"omitempty,url"`
	Semester    string    `gorm:"size:100" json:"semester"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HistoryItem represents one milestone on the history timeline.
type HistoryItem struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Year        int       `gorm:"index" json:"year" validate:"required"`
	Title       string    `gorm:"size:200;not null" json:"title" validate:"required"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
