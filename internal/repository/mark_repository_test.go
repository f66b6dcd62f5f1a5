package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/gradebook/internal/model"
	"github.com/lshigami/gradebook/internal/repository"
	"github.com/lshigami/gradebook/internal/testutil"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestMarkRepositoryCreateBatch(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewMarkRepository(db)
	ctx := context.Background()

	marks := []*model.Mark{
		{StudentID: "S1", SubjectID: "SUB1", MarksObtained: 40, TotalMarks: 50, ExamType: "final"},
		{StudentID: "S2", SubjectID: "SUB1", MarksObtained: 35, TotalMarks: 50, ExamType: "final"},
	}
	if err := repo.CreateBatch(ctx, marks); err != nil {
		t.Fatalf("CreateBatch() error = %v", err)
	}

	for i, m := range marks {
		if m.ID == "" {
			t.Errorf("mark %d has no id after insert", i)
		}
		if m.CreatedAt.IsZero() {
			t.Errorf("mark %d has no created_at after insert", i)
		}
	}

	var count int64
	db.Model(&model.Mark{}).Count(&count)
	if count != 2 {
		t.Errorf("stored %d marks, want 2", count)
	}
}

func TestMarkRepositoryCreateBatchIsAtomic(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewMarkRepository(db)
	ctx := context.Background()

	existing := &model.Mark{ID: "dup", StudentID: "S1", SubjectID: "SUB1", MarksObtained: 1, TotalMarks: 2, ExamType: "quiz"}
	if err := repo.Create(ctx, existing); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	batch := []*model.Mark{
		{StudentID: "S2", SubjectID: "SUB1", MarksObtained: 40, TotalMarks: 50, ExamType: "final"},
		{ID: "dup", StudentID: "S3", SubjectID: "SUB1", MarksObtained: 35, TotalMarks: 50, ExamType: "final"},
	}
	if err := repo.CreateBatch(ctx, batch); err == nil {
		t.Fatal("CreateBatch() with a duplicate primary key should fail")
	}

	var count int64
	db.Model(&model.Mark{}).Count(&count)
	if count != 1 {
		t.Errorf("stored %d marks after failed batch, want 1", count)
	}
}

func TestMarkRepositoryFind(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedStudent(t, db, "S1", "Alice", "alice@example.com")
	testutil.SeedStudent(t, db, "S2", "Bob", "bob@example.com")
	testutil.SeedSubject(t, db, "SUB1", "Mathematics")
	testutil.SeedSubject(t, db, "SUB2", "Physics")

	repo := repository.NewMarkRepository(db)
	ctx := context.Background()
	seed := []*model.Mark{
		{StudentID: "S1", SubjectID: "SUB1", MarksObtained: 40, TotalMarks: 50, ExamType: "final"},
		{StudentID: "S2", SubjectID: "SUB1", MarksObtained: 30, TotalMarks: 50, ExamType: "midterm"},
		{StudentID: "S1", SubjectID: "SUB2", MarksObtained: 20, TotalMarks: 25, ExamType: "final"},
	}
	if err := repo.CreateBatch(ctx, seed); err != nil {
		t.Fatalf("seed marks: %v", err)
	}

	tests := []struct {
		name   string
		filter repository.MarkFilter
		want   int
	}{
		{"no filter", repository.MarkFilter{}, 3},
		{"by student", repository.MarkFilter{StudentID: "S1"}, 2},
		{"by subject", repository.MarkFilter{SubjectID: "SUB1"}, 2},
		{"by exam type", repository.MarkFilter{ExamType: "final"}, 2},
		{"combined", repository.MarkFilter{StudentID: "S1", SubjectID: "SUB2", ExamType: "final"}, 1},
		{"no match", repository.MarkFilter{ExamType: "quiz"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marks, err := repo.Find(ctx, tt.filter)
			if err != nil {
				t.Fatalf("Find() error = %v", err)
			}
			if len(marks) != tt.want {
				t.Fatalf("Find() returned %d marks, want %d", len(marks), tt.want)
			}
			for _, m := range marks {
				if m.Student == nil || m.Student.Name == "" || m.Student.Email == "" {
					t.Errorf("mark %s: student not expanded: %+v", m.ID, m.Student)
				}
				if m.Subject == nil || m.Subject.SubjectName == "" {
					t.Errorf("mark %s: subject not expanded: %+v", m.ID, m.Subject)
				}
			}
		})
	}
}

func TestMarkRepositoryUpdateByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewMarkRepository(db)
	ctx := context.Background()

	mark := &model.Mark{StudentID: "S1", SubjectID: "SUB1", MarksObtained: 40, TotalMarks: 50, ExamType: "final"}
	if err := repo.Create(ctx, mark); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := repo.UpdateByID(ctx, mark.ID, repository.MarkUpdate{ExamType: strPtr("retake")})
	if err != nil {
		t.Fatalf("UpdateByID() error = %v", err)
	}
	if updated.ExamType != "retake" || updated.MarksObtained != 40 || updated.TotalMarks != 50 {
		t.Errorf("examType-only update changed other fields: %+v", updated)
	}

	updated, err = repo.UpdateByID(ctx, mark.ID, repository.MarkUpdate{MarksObtained: floatPtr(0)})
	if err != nil {
		t.Fatalf("UpdateByID() error = %v", err)
	}
	if updated.MarksObtained != 0 {
		t.Errorf("MarksObtained = %v, want 0", updated.MarksObtained)
	}

	_, err = repo.UpdateByID(ctx, "missing", repository.MarkUpdate{ExamType: strPtr("final")})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("UpdateByID(missing) error = %v, want ErrNotFound", err)
	}
}

func TestMarkRepositoryDeleteByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewMarkRepository(db)
	ctx := context.Background()

	mark := &model.Mark{StudentID: "S1", SubjectID: "SUB1", MarksObtained: 40, TotalMarks: 50, ExamType: "final"}
	if err := repo.Create(ctx, mark); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	removed, err := repo.DeleteByID(ctx, mark.ID)
	if err != nil || !removed {
		t.Fatalf("DeleteByID() = %v, %v; want true, nil", removed, err)
	}
	removed, err = repo.DeleteByID(ctx, mark.ID)
	if err != nil || removed {
		t.Fatalf("second DeleteByID() = %v, %v; want false, nil", removed, err)
	}

	marks, err := repo.Find(ctx, repository.MarkFilter{})
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if len(marks) != 0 {
		t.Errorf("deleted mark still listed: %+v", marks)
	}
}

func TestStudentAndSubjectLookups(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedStudent(t, db, "S1", "Alice", "alice@example.com")
	testutil.SeedStudent(t, db, "S2", "Bob", "bob@example.com")
	testutil.SeedSubject(t, db, "SUB1", "Mathematics")
	ctx := context.Background()

	students, err := repository.NewStudentRepository(db).FindByIDs(ctx, []string{"S1", "S2", "S9"})
	if err != nil {
		t.Fatalf("FindByIDs() error = %v", err)
	}
	if len(students) != 2 {
		t.Errorf("FindByIDs() returned %d students, want 2", len(students))
	}

	subjects := repository.NewSubjectRepository(db)
	subject, err := subjects.FindByID(ctx, "SUB1")
	if err != nil || subject.SubjectName != "Mathematics" {
		t.Errorf("FindByID(SUB1) = %+v, %v", subject, err)
	}
	if _, err := subjects.FindByID(ctx, "SUB9"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("FindByID(SUB9) error = %v, want ErrNotFound", err)
	}
}

func TestGormHealthChecker(t *testing.T) {
	db := testutil.NewTestDB(t)
	checker := repository.NewGormHealthChecker(db)
	if checker.Name() != "postgres" {
		t.Errorf("Name() = %q", checker.Name())
	}
	if err := checker.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}
