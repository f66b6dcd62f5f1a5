package model

import (
	"time"

	"gorm.io/gorm"
)

type Subject struct {
	ID          string         `gorm:"primarykey;type:varchar(36)" json:"id"`
	SubjectName string         `json:"subjectName" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *Subject) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = NewID()
	}
	return nil
}
