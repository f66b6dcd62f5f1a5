package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/gradebook/internal/dto"
	"github.com/lshigami/gradebook/internal/model"
	"github.com/rs/zerolog/log"
)

func toMarkResponse(mark *model.Mark) dto.MarkResponse {
	var resp dto.MarkResponse
	if err := copier.Copy(&resp, mark); err != nil {
		log.Error().Err(err).Str("markID", mark.ID).Msg("Failed to copy Mark model to MarkResponse")
	}
	return resp
}

func toMarkDetailResponse(mark *model.Mark) dto.MarkDetailResponse {
	resp := dto.MarkDetailResponse{
		ID:            mark.ID,
		MarksObtained: mark.MarksObtained,
		TotalMarks:    mark.TotalMarks,
		ExamType:      mark.ExamType,
		CreatedAt:     mark.CreatedAt,
		UpdatedAt:     mark.UpdatedAt,
	}
	if mark.Student != nil {
		var student dto.StudentSummary
		if err := copier.Copy(&student, mark.Student); err != nil {
			log.Error().Err(err).Str("markID", mark.ID).Msg("Failed to copy Student model to StudentSummary")
		}
		resp.Student = &student
	}
	if mark.Subject != nil {
		var subject dto.SubjectSummary
		if err := copier.Copy(&subject, mark.Subject); err != nil {
			log.Error().Err(err).Str("markID", mark.ID).Msg("Failed to copy Subject model to SubjectSummary")
		}
		resp.Subject = &subject
	}
	return resp
}
