package repository

import (
	"context"

	"github.com/lshigami/gradebook/internal/model"
	"gorm.io/gorm"
)

type StudentRepository interface {
	FindByIDs(ctx context.Context, ids []string) ([]model.Student, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Student, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var students []model.Student
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}
