package model

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// swagger:model User
type User struct {
	UUIDBase
	Email     string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Name      string   `gorm:"size:100" json:"name"`
	Image     string   `gorm:"size:255" json:"image"`
	Password  string   `gorm:"size:100;not null" json:"-"`
	Role      UserRole `gorm:"size:20;default:'user'" json:"role"`
	Bio       string   `gorm:"type:text" json:"bio"`
	Expertise string   `gorm:"size:255" json:"-"` // comma-separated tags
	Points    int      `gorm:"default:0" json:"points"`
}

func (User) TableName() string {
	return "users"
}
