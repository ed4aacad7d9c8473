package model

import "time"

// LearningPath is an ordered curriculum over content items. IsOnboarding
// marks the mandatory new-hire path.
type LearningPath struct {
	UUIDBase
	Title        string             `gorm:"size:255;not null" json:"title"`
	Description  string             `gorm:"type:text" json:"description"`
	IsOnboarding bool               `gorm:"default:false" json:"isOnboarding"`
	SortOrder    int                `gorm:"default:0" json:"order"`
	Items        []LearningPathItem `gorm:"foreignKey:PathID" json:"-"`
}

func (LearningPath) TableName() string {
	return "learning_paths"
}

// LearningPathItem rows are replaced wholesale on path edit, never patched
// one by one, so they carry no soft-delete column.
type LearningPathItem struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	PathID    string    `gorm:"index;type:varchar(36);not null" json:"pathId"`
	ContentID string    `gorm:"index;type:varchar(36);not null" json:"contentId"`
	SortOrder int       `gorm:"default:0" json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}

func (LearningPathItem) TableName() string {
	return "learning_path_items"
}
