package service

import (
	"context"
	"errors"
	"strings"

	"github.com/lshigami/gradebook/internal/apperror"
	"github.com/lshigami/gradebook/internal/dto"
	"github.com/lshigami/gradebook/internal/model"
	"github.com/lshigami/gradebook/internal/repository"
	"github.com/rs/zerolog/log"
)

type MarkService interface {
	BulkUploadMarks(ctx context.Context, req dto.BulkUploadMarksRequest) ([]dto.MarkResponse, error)
	AddMarks(ctx context.Context, req dto.AddMarkRequest) (*dto.MarkResponse, error)
	// UpdateMarks returns nil without an error when id matches no mark.
	UpdateMarks(ctx context.Context, id string, req dto.UpdateMarkRequest) (*dto.MarkResponse, error)
	GetMarks(ctx context.Context, query dto.MarkQuery) ([]dto.MarkDetailResponse, error)
	// DeleteMarks succeeds whether or not id matched a mark.
	DeleteMarks(ctx context.Context, id string) error
}

type markService struct {
	markRepo    repository.MarkRepository
	studentRepo repository.StudentRepository
	subjectRepo repository.SubjectRepository
}

func NewMarkService(
	markRepo repository.MarkRepository,
	studentRepo repository.StudentRepository,
	subjectRepo repository.SubjectRepository,
) MarkService {
	return &markService{
		markRepo:    markRepo,
		studentRepo: studentRepo,
		subjectRepo: subjectRepo,
	}
}

func (s *markService) BulkUploadMarks(ctx context.Context, req dto.BulkUploadMarksRequest) ([]dto.MarkResponse, error) {
	subjectID := strings.TrimSpace(req.SubjectID)
	examType := strings.TrimSpace(req.ExamType)
	if subjectID == "" || req.MarksData == nil || examType == "" {
		return nil, apperror.Validation("Subject ID, marks data, and exam type are required")
	}
	if len(req.MarksData) == 0 {
		return nil, apperror.Validation("Marks data must be a non-empty array")
	}
	for i := range req.MarksData {
		req.MarksData[i].StudentID = strings.TrimSpace(req.MarksData[i].StudentID)
	}
	if err := validate.Struct(req); err != nil {
		return nil, apperror.Validation("Invalid marks data", validationDetails(err)...)
	}

	studentIDs := make([]string, 0, len(req.MarksData))
	seen := make(map[string]bool, len(req.MarksData))
	var duplicates []string
	for _, entry := range req.MarksData {
		if seen[entry.StudentID] {
			duplicates = append(duplicates, entry.StudentID)
			continue
		}
		seen[entry.StudentID] = true
		studentIDs = append(studentIDs, entry.StudentID)
	}
	if len(duplicates) > 0 {
		return nil, apperror.Validation("Duplicate student IDs in marks data", duplicates...)
	}

	if err := s.requireSubject(ctx, subjectID); err != nil {
		return nil, err
	}
	missing, err := s.missingStudents(ctx, studentIDs)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, apperror.Validation("Some student IDs are invalid", missing...)
	}

	marks := make([]*model.Mark, 0, len(req.MarksData))
	for _, entry := range req.MarksData {
		marks = append(marks, &model.Mark{
			StudentID:     entry.StudentID,
			SubjectID:     subjectID,
			MarksObtained: *entry.MarksObtained,
			TotalMarks:    *entry.TotalMarks,
			ExamType:      examType,
		})
	}
	if err := s.markRepo.CreateBatch(ctx, marks); err != nil {
		log.Error().Err(err).Str("subjectID", subjectID).Int("count", len(marks)).Msg("Failed to insert marks batch")
		return nil, apperror.Store(err, "Failed to save marks")
	}

	resp := make([]dto.MarkResponse, 0, len(marks))
	for _, m := range marks {
		resp = append(resp, toMarkResponse(m))
	}
	log.Info().Str("subjectID", subjectID).Str("examType", examType).Int("count", len(resp)).Msg("Bulk marks uploaded")
	return resp, nil
}

func (s *markService) AddMarks(ctx context.Context, req dto.AddMarkRequest) (*dto.MarkResponse, error) {
	req.StudentID = strings.TrimSpace(req.StudentID)
	req.SubjectID = strings.TrimSpace(req.SubjectID)
	req.ExamType = strings.TrimSpace(req.ExamType)
	if err := validate.Struct(req); err != nil {
		return nil, apperror.Validation("All fields are required", validationDetails(err)...)
	}

	if err := s.requireSubject(ctx, req.SubjectID); err != nil {
		return nil, err
	}
	missing, err := s.missingStudents(ctx, []string{req.StudentID})
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, apperror.NotFound("Invalid student ID")
	}

	mark := model.Mark{
		StudentID:     req.StudentID,
		SubjectID:     req.SubjectID,
		MarksObtained: *req.MarksObtained,
		TotalMarks:    *req.TotalMarks,
		ExamType:      req.ExamType,
	}
	if err := s.markRepo.Create(ctx, &mark); err != nil {
		log.Error().Err(err).Str("studentID", req.StudentID).Str("subjectID", req.SubjectID).Msg("Failed to create mark")
		return nil, apperror.Store(err, "Failed to save marks")
	}

	resp := toMarkResponse(&mark)
	return &resp, nil
}

func (s *markService) UpdateMarks(ctx context.Context, id string, req dto.UpdateMarkRequest) (*dto.MarkResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.Validation("Marks ID is required")
	}
	update := repository.MarkUpdate{
		MarksObtained: req.MarksObtained,
		TotalMarks:    req.TotalMarks,
		ExamType:      req.ExamType,
	}
	if update.IsEmpty() {
		return nil, apperror.Validation("At least one of marksObtained, totalMarks or examType is required")
	}
	if req.ExamType != nil && strings.TrimSpace(*req.ExamType) == "" {
		return nil, apperror.Validation("Exam type must not be empty")
	}

	mark, err := s.markRepo.UpdateByID(ctx, id, update)
	if errors.Is(err, repository.ErrNotFound) {
		log.Info().Str("markID", id).Msg("Update requested for unknown mark, nothing changed")
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Str("markID", id).Msg("Failed to update mark")
		return nil, apperror.Store(err, "Failed to update marks")
	}

	resp := toMarkResponse(mark)
	return &resp, nil
}

func (s *markService) GetMarks(ctx context.Context, query dto.MarkQuery) ([]dto.MarkDetailResponse, error) {
	marks, err := s.markRepo.Find(ctx, repository.MarkFilter{
		StudentID: strings.TrimSpace(query.StudentID),
		SubjectID: strings.TrimSpace(query.SubjectID),
		ExamType:  strings.TrimSpace(query.ExamType),
	})
	if err != nil {
		log.Error().Err(err).Interface("query", query).Msg("Failed to query marks")
		return nil, apperror.Store(err, "Failed to retrieve marks")
	}

	resp := make([]dto.MarkDetailResponse, 0, len(marks))
	for i := range marks {
		resp = append(resp, toMarkDetailResponse(&marks[i]))
	}
	return resp, nil
}

func (s *markService) DeleteMarks(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperror.Validation("Marks ID is required")
	}
	removed, err := s.markRepo.DeleteByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("markID", id).Msg("Failed to delete mark")
		return apperror.Store(err, "Failed to delete marks")
	}
	if !removed {
		log.Info().Str("markID", id).Msg("Delete requested for unknown mark, nothing removed")
	}
	return nil
}

func (s *markService) requireSubject(ctx context.Context, subjectID string) error {
	_, err := s.subjectRepo.FindByID(ctx, subjectID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("Invalid subject ID")
	}
	if err != nil {
		log.Error().Err(err).Str("subjectID", subjectID).Msg("Failed to look up subject")
		return apperror.Store(err, "Failed to look up subject")
	}
	return nil
}

// missingStudents returns the requested ids that do not resolve to a student.
// Comparison is by set membership, not by count.
func (s *markService) missingStudents(ctx context.Context, ids []string) ([]string, error) {
	students, err := s.studentRepo.FindByIDs(ctx, ids)
	if err != nil {
		log.Error().Err(err).Strs("studentIDs", ids).Msg("Failed to look up students")
		return nil, apperror.Store(err, "Failed to look up students")
	}
	found := make(map[string]bool, len(students))
	for _, st := range students {
		found[st.ID] = true
	}
	var missing []string
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
