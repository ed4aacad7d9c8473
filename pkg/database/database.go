package database

import (
	"fmt"
	"log"

	"recruiter_hub_backend/internal/config"
	"recruiter_hub_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Content{},
		&model.ContentProgress{},
		&model.LearningPath{},
		&model.LearningPathItem{},
		&model.Question{},
		&model.Answer{},
		&model.AnswerVote{},
		&model.Kudos{},
		&model.PointTransaction{},
		&model.ContentRequest{},
	)
}
