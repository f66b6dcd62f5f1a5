package repository

import (
	"context"
	"errors"

	"github.com/lshigami/gradebook/internal/model"
	"gorm.io/gorm"
)

type SubjectRepository interface {
	FindByID(ctx context.Context, id string) (*model.Subject, error)
}

type subjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) FindByID(ctx context.Context, id string) (*model.Subject, error) {
	var subject model.Subject
	if err := r.db.WithContext(ctx).First(&subject, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &subject, nil
}
