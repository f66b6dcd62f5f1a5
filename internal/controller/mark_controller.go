package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/gradebook/internal/apperror"
	"github.com/lshigami/gradebook/internal/dto"
	"github.com/lshigami/gradebook/internal/repository"
	"github.com/lshigami/gradebook/internal/service"
	"github.com/rs/zerolog/log"
)

const healthTimeout = 2 * time.Second

type MarkController struct {
	markSvc service.MarkService
	health  repository.HealthChecker
}

func NewMarkController(markSvc service.MarkService, health repository.HealthChecker) *MarkController {
	return &MarkController{markSvc: markSvc, health: health}
}

func (ctrl *MarkController) RegisterRoutes(router *gin.Engine) {
	router.GET("/healthz", ctrl.Health)

	apiV1 := router.Group("/api/v1")
	{
		marks := apiV1.Group("/marks")
		marks.POST("/bulk", ctrl.BulkUploadMarks)
		marks.POST("", ctrl.AddMarks)
		marks.PATCH("/:id", ctrl.UpdateMarks)
		marks.PUT("/:id", ctrl.UpdateMarks)
		marks.GET("", ctrl.GetMarks)
		marks.DELETE("/:id", ctrl.DeleteMarks)
	}
}

// BulkUploadMarks godoc
// @Summary Upload marks for many students
// @Description Saves one mark per entry for a single subject and exam type. Either every entry is saved or none is.
// @Tags marks
// @Accept json
// @Produce json
// @Param marks body dto.BulkUploadMarksRequest true "Subject, exam type and per-student marks"
// @Success 201 {object} dto.BulkUploadMarksResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields, invalid entries or unknown students"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /marks/bulk [post]
func (ctrl *MarkController) BulkUploadMarks(c *gin.Context) {
	var req dto.BulkUploadMarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("BulkUploadMarks: failed to bind JSON")
		_ = c.Error(apperror.Validation("Invalid request body", err.Error()))
		return
	}

	saved, err := ctrl.markSvc.BulkUploadMarks(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.BulkUploadMarksResponse{
		Success:    true,
		Message:    "Marks uploaded successfully for all students",
		SavedMarks: saved,
	})
}

// AddMarks godoc
// @Summary Add a single mark
// @Tags marks
// @Accept json
// @Produce json
// @Param mark body dto.AddMarkRequest true "Mark data"
// @Success 201 {object} dto.AddMarkResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields"
// @Failure 404 {object} dto.ErrorResponse "Student or subject not found"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /marks [post]
func (ctrl *MarkController) AddMarks(c *gin.Context) {
	var req dto.AddMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("AddMarks: failed to bind JSON")
		_ = c.Error(apperror.Validation("Invalid request body", err.Error()))
		return
	}

	mark, err := ctrl.markSvc.AddMarks(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.AddMarkResponse{
		Success: true,
		Message: "Marks added successfully",
		Marks:   *mark,
	})
}

// UpdateMarks godoc
// @Summary Update a mark
// @Description Overwrites only the fields present in the body. An unknown id is not an error and yields a null updatedMarks.
// @Tags marks
// @Accept json
// @Produce json
// @Param id path string true "Mark ID"
// @Param mark body dto.UpdateMarkRequest true "Fields to change"
// @Success 200 {object} dto.UpdateMarkResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed body or no fields given"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /marks/{id} [patch]
// @Router /marks/{id} [put]
func (ctrl *MarkController) UpdateMarks(c *gin.Context) {
	var req dto.UpdateMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Str("markID", c.Param("id")).Msg("UpdateMarks: failed to bind JSON")
		_ = c.Error(apperror.Validation("Invalid request body", err.Error()))
		return
	}

	updated, err := ctrl.markSvc.UpdateMarks(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.UpdateMarkResponse{
		Success:      true,
		Message:      "Marks updated successfully",
		UpdatedMarks: updated,
	})
}

// GetMarks godoc
// @Summary List marks
// @Description Returns marks matching every given filter, oldest first, with student and subject expanded.
// @Tags marks
// @Produce json
// @Param studentId query string false "Student ID"
// @Param subjectId query string false "Subject ID"
// @Param examType query string false "Exam type"
// @Success 200 {object} dto.GetMarksResponse
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /marks [get]
func (ctrl *MarkController) GetMarks(c *gin.Context) {
	var query dto.MarkQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		_ = c.Error(apperror.Validation("Invalid query parameters", err.Error()))
		return
	}

	marks, err := ctrl.markSvc.GetMarks(c.Request.Context(), query)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.GetMarksResponse{
		Success: true,
		Message: "Marks retrieved successfully",
		Marks:   marks,
	})
}

// DeleteMarks godoc
// @Summary Delete a mark
// @Description Deleting an id that does not exist still succeeds.
// @Tags marks
// @Produce json
// @Param id path string true "Mark ID"
// @Success 200 {object} dto.DeleteMarkResponse
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /marks/{id} [delete]
func (ctrl *MarkController) DeleteMarks(c *gin.Context) {
	if err := ctrl.markSvc.DeleteMarks(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteMarkResponse{
		Success: true,
		Message: "Marks deleted successfully",
	})
}

// Health pings the configured store. It is mounted at the root, outside the
// documented API.
func (ctrl *MarkController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := ctrl.health.Ping(ctx); err != nil {
		log.Error().Err(err).Str("store", ctrl.health.Name()).Msg("Health check failed")
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Store: ctrl.health.Name()})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Store: ctrl.health.Name()})
}
