package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mark is a student's score on one subject for one exam type.
type Mark struct {
	ID            string         `gorm:"primarykey;type:varchar(36)" json:"id"`
	StudentID     string         `json:"student" gorm:"type:varchar(36);not null;index"`
	Student       *Student       `json:"-" gorm:"foreignKey:StudentID"`
	SubjectID     string         `json:"subject" gorm:"type:varchar(36);not null;index"`
	Subject       *Subject       `json:"-" gorm:"foreignKey:SubjectID"`
	MarksObtained float64        `json:"marksObtained" gorm:"not null"`
	TotalMarks    float64        `json:"totalMarks" gorm:"not null"`
	ExamType      string         `json:"examType" gorm:"not null;index"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns an id when the caller did not.
func (m *Mark) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID()
	}
	return nil
}

// NewID returns a fresh record id. Both stores use it so ids look the same
// whichever backend is configured.
func NewID() string {
	return uuid.NewString()
}
