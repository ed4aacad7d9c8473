package model

type Question struct {
	UUIDBase
	Title    string `gorm:"size:255;not null" json:"title"`
	Body     string `gorm:"type:text;not null" json:"body"`
	AuthorID string `gorm:"index;type:varchar(36);not null" json:"authorId"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"-"`
	Tags     string `gorm:"size:255" json:"-"` // comma-separated
	Resolved bool   `gorm:"default:false" json:"resolved"`
}

func (Question) TableName() string {
	return "questions"
}

type Answer struct {
	UUIDBase
	QuestionID string `gorm:"index;type:varchar(36);not null" json:"questionId"`
	Body       string `gorm:"type:text;not null" json:"body"`
	AuthorID   string `gorm:"index;type:varchar(36);not null" json:"authorId"`
	Author     User   `gorm:"foreignKey:AuthorID" json:"-"`
	IsAccepted bool   `gorm:"default:false" json:"isAccepted"`
	Upvotes    int    `gorm:"default:0" json:"upvotes"`
}

func (Answer) TableName() string {
	return "answers"
}

// AnswerVote caps upvoting at one vote per user per answer via the unique
// composite index.
type AnswerVote struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string `gorm:"uniqueIndex:idx_vote_user_answer;type:varchar(36);not null" json:"userId"`
	AnswerID  string `gorm:"uniqueIndex:idx_vote_user_answer;type:varchar(36);not null" json:"answerId"`
	CreatedAt int64  `gorm:"autoCreateTime" json:"createdAt"`
}

func (AnswerVote) TableName() string {
	return "answer_votes"
}
