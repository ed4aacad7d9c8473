package model

type RequestStatus string

const (
	RequestOpen       RequestStatus = "open"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestDeclined   RequestStatus = "declined"
)

// ContentRequest is a wish-list entry: "someone should write this up".
type ContentRequest struct {
	UUIDBase
	Title       string        `gorm:"size:255;not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	RequesterID string        `gorm:"index;type:varchar(36);not null" json:"requesterId"`
	Requester   User          `gorm:"foreignKey:RequesterID" json:"-"`
	Status      RequestStatus `gorm:"size:20;default:'open'" json:"status"`
}

func (ContentRequest) TableName() string {
	return "content_requests"
}
