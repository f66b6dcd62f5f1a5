package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned by every store implementation when a lookup by id
// matches nothing.
var ErrNotFound = errors.New("record not found")

// MarkFilter selects marks; empty fields are not applied.
type MarkFilter struct {
	StudentID string
	SubjectID string
	ExamType  string
}

// MarkUpdate holds the fields to overwrite; nil means keep the stored value.
type MarkUpdate struct {
	MarksObtained *float64
	TotalMarks    *float64
	ExamType      *string
}

func (u MarkUpdate) IsEmpty() bool {
	return u.MarksObtained == nil && u.TotalMarks == nil && u.ExamType == nil
}

// HealthChecker reports whether the configured store is reachable.
type HealthChecker interface {
	Name() string
	Ping(ctx context.Context) error
}
