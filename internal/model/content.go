package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ContentType string

const (
	ContentDocument  ContentType = "document"
	ContentVideo     ContentType = "video"
	ContentChecklist ContentType = "checklist"
	ContentWizard    ContentType = "wizard"
	ContentPlaybook  ContentType = "playbook"
)

type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPending   ContentStatus = "pending"
	StatusPublished ContentStatus = "published"
)

// Content is a single library item: a training document, video, checklist,
// wizard or playbook. Body holds markdown.
// swagger:model Content
type Content struct {
	UUIDBase
	Title       string        `gorm:"size:255;not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	Type        ContentType   `gorm:"size:20;not null" json:"type"`
	Body        string        `gorm:"type:text" json:"body"`
	VideoURL    string        `gorm:"size:255" json:"videoUrl"`
	Tags        string        `gorm:"size:255" json:"-"` // comma-separated
	Category    string        `gorm:"size:100" json:"category"`
	Status      ContentStatus `gorm:"size:20;default:'draft';index" json:"status"`
	AuthorID    string        `gorm:"index;type:varchar(36)" json:"authorId"`
	Author      User          `gorm:"foreignKey:AuthorID" json:"-"`
	Version     int           `gorm:"default:1" json:"version"`
	PublishedAt *time.Time    `json:"publishedAt"`
}

func (Content) TableName() string {
	return "content"
}

// ContentProgress tracks one user's state on one content item. One row per
// (user, content) pair; the unique index backs the exactly-once completion
// award.
type ContentProgress struct {
	ID             string            `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID         string            `gorm:"uniqueIndex:idx_progress_user_content;type:varchar(36);not null" json:"userId"`
	ContentID      string            `gorm:"uniqueIndex:idx_progress_user_content;type:varchar(36);not null" json:"contentId"`
	Completed      bool              `gorm:"default:false" json:"completed"`
	CompletedAt    *time.Time        `json:"completedAt"`
	ChecklistState datatypes.JSONMap `json:"checklistState"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

func (ContentProgress) TableName() string {
	return "content_progress"
}

func (p *ContentProgress) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = GenerateUUID()
	}
	return
}
