package model

type Kudos struct {
	UUIDBase
	FromUserID string `gorm:"index;type:varchar(36);not null" json:"fromUserId"`
	FromUser   User   `gorm:"foreignKey:FromUserID" json:"-"`
	ToUserID   string `gorm:"index;type:varchar(36);not null" json:"toUserId"`
	ToUser     User   `gorm:"foreignKey:ToUserID" json:"-"`
	Message    string `gorm:"type:text" json:"message"`
}

func (Kudos) TableName() string {
	return "kudos"
}
