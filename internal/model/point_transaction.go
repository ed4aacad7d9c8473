package model

import (
	"time"

	"gorm.io/gorm"
)

// Reference types recorded on ledger rows.
const (
	RefContent  = "content"
	RefQuestion = "question"
	RefAnswer   = "answer"
	RefKudos    = "kudos"
)

// PointTransaction is an immutable ledger row. The sum of a user's rows must
// equal users.points; every insert shares a transaction with the matching
// points increment.
type PointTransaction struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID        string    `gorm:"index;type:varchar(36);not null" json:"userId"`
	Amount        int       `gorm:"not null" json:"amount"`
	Reason        string    `gorm:"size:100;not null" json:"reason"`
	ReferenceType string    `gorm:"size:20" json:"referenceType"`
	ReferenceID   string    `gorm:"size:36" json:"referenceId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (PointTransaction) TableName() string {
	return "point_transactions"
}

func (t *PointTransaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = GenerateUUID()
	}
	return
}
