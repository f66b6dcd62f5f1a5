package repository

import (
	"context"
	"errors"

	"github.com/lshigami/gradebook/internal/model"
	"gorm.io/gorm"
)

const markInsertBatchSize = 100

type MarkRepository interface {
	Create(ctx context.Context, mark *model.Mark) error
	// CreateBatch inserts all marks or none of them.
	CreateBatch(ctx context.Context, marks []*model.Mark) error
	// Find returns matching marks with Student and Subject loaded.
	Find(ctx context.Context, filter MarkFilter) ([]model.Mark, error)
	// UpdateByID applies the update and returns the stored record afterwards.
	UpdateByID(ctx context.Context, id string, update MarkUpdate) (*model.Mark, error)
	// DeleteByID reports whether a record was removed.
	DeleteByID(ctx context.Context, id string) (bool, error)
}

type markRepository struct {
	db *gorm.DB
}

func NewMarkRepository(db *gorm.DB) MarkRepository {
	return &markRepository{db: db}
}

func (r *markRepository) Create(ctx context.Context, mark *model.Mark) error {
	return r.db.WithContext(ctx).Create(mark).Error
}

func (r *markRepository) CreateBatch(ctx context.Context, marks []*model.Mark) error {
	if len(marks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(marks, markInsertBatchSize).Error
	})
}

func (r *markRepository) Find(ctx context.Context, filter MarkFilter) ([]model.Mark, error) {
	query := r.db.WithContext(ctx).Model(&model.Mark{})
	if filter.StudentID != "" {
		query = query.Where("student_id = ?", filter.StudentID)
	}
	if filter.SubjectID != "" {
		query = query.Where("subject_id = ?", filter.SubjectID)
	}
	if filter.ExamType != "" {
		query = query.Where("exam_type = ?", filter.ExamType)
	}

	var marks []model.Mark
	err := query.
		Preload("Student", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Preload("Subject", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "subject_name")
		}).
		Order("created_at ASC").
		Find(&marks).Error
	return marks, err
}

func (r *markRepository) UpdateByID(ctx context.Context, id string, update MarkUpdate) (*model.Mark, error) {
	var mark model.Mark
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&mark, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&mark).Updates(updateColumns(update)).Error; err != nil {
			return err
		}
		return tx.First(&mark, "id = ?", id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &mark, nil
}

func (r *markRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Mark{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// updateColumns uses a map so zero values are written too; gorm skips zero
// fields when updating from a struct.
func updateColumns(update MarkUpdate) map[string]interface{} {
	columns := make(map[string]interface{}, 3)
	if update.MarksObtained != nil {
		columns["marks_obtained"] = *update.MarksObtained
	}
	if update.TotalMarks != nil {
		columns["total_marks"] = *update.TotalMarks
	}
	if update.ExamType != nil {
		columns["exam_type"] = *update.ExamType
	}
	return columns
}
