package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const MaxNameLength = 255

type Exercise struct {
	ID        uuid.UUID `gorm:"primaryKey"`
	UserID    string    `gorm:"not null;uniqueIndex:exercises_user_name_unique"`
	Name      string    `gorm:"not null;uniqueIndex:exercises_user_name_unique"`
	CreatedAt time.Time `gorm:"not null"`
}

func (exercise *Exercise) BeforeCreate(*gorm.DB) error {
	if exercise.ID == uuid.Nil {
		exercise.ID = uuid.New()
	}
	return nil
}
