package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/library-manager/internal/dto"
	"github.com/snnyvrz/library-manager/internal/validation"
)

type WriterService interface {
	FindAll(ctx context.Context) ([]dto.Writer, error)
	FindByID(ctx context.Context, id int64) (dto.Writer, bool, error)
	FindByName(ctx context.Context, name string) ([]dto.Writer, error)
	FindByBirthDate(ctx context.Context, birthDate time.Time) ([]dto.Writer, error)
	FindByNameAndBirthDate(ctx context.Context, name string, birthDate time.Time) ([]dto.Writer, error)
	Create(ctx context.Context, in dto.Writer) (dto.Writer, error)
	Update(ctx context.Context, in dto.Writer) (dto.Writer, error)
	Delete(ctx context.Context, id int64) error
}

type WriterHandler struct {
	service WriterService
}

func NewWriterHandler(service WriterService) *WriterHandler {
	return &WriterHandler{service: service}
}

func (h *WriterHandler) RegisterRoutes(r *gin.RouterGroup) {
	writers := r.Group("/writers")
	{
		writers.GET("", h.ListWriters)
		writers.GET("/:id", h.GetWriterByID)
		writers.POST("", h.CreateWriter)
		writers.PUT("/:id", h.UpdateWriter)
		writers.PATCH("/:id", h.PatchWriter)
		writers.DELETE("/:id", h.DeleteWriter)
	}
}

// ListWriters godoc
// @Summary      List writers
// @Description  List all writers, or the writers matching name and/or birth_date exactly
// @Tags         writers
// @Produce      json
// @Param        name        query     string  false  "Exact name"
// @Param        birth_date  query     string  false  "Exact birth date (YYYY-MM-DD)" example(1903-06-25)
// @Success      200  {object}  ListWritersResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid query parameters"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /writers [get]
func (h *WriterHandler) ListWriters(c *gin.Context) {
	ctx := c.Request.Context()

	name, hasName := c.GetQuery("name")

	birthDate, hasDate, err := parseDateQuery(c, "birth_date")
	if err != nil {
		writeError(c, http.StatusBadRequest,
			"INVALID_BIRTH_DATE",
			"birth_date must be in format YYYY-MM-DD",
		)
		return
	}

	var writers []dto.Writer
	switch {
	case hasName && hasDate:
		writers, err = h.service.FindByNameAndBirthDate(ctx, name, birthDate)
	case hasName:
		writers, err = h.service.FindByName(ctx, name)
	case hasDate:
		writers, err = h.service.FindByBirthDate(ctx, birthDate)
	default:
		writers, err = h.service.FindAll(ctx)
	}
	if err != nil {
		writeServiceError(c, err, "WRITER_LIST_FAILED", "failed to list writers")
		return
	}

	c.JSON(http.StatusOK, ListWritersResponse{Data: writers})
}

// GetWriterByID godoc
// @Summary      Get writer by ID
// @Tags         writers
// @Produce      json
// @Param        id   path      int                       true  "Writer ID"
// @Success      200  {object}  WriterResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Writer not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /writers/{id} [get]
func (h *WriterHandler) GetWriterByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, "INVALID_WRITER_ID", "invalid writer id")
		return
	}

	writer, found, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "WRITER_FETCH_FAILED", "failed to fetch writer")
		return
	}
	if !found {
		writeError(c, http.StatusNotFound, "WRITER_NOT_FOUND", "writer not found")
		return
	}

	c.JSON(http.StatusOK, WriterResponse{Data: writer})
}

// CreateWriter godoc
// @Summary      Create a writer
// @Tags         writers
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateWriterRequest        true  "Writer to create"
// @Success      201      {object}  WriterResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /writers [post]
func (h *WriterHandler) CreateWriter(c *gin.Context) {
	var req CreateWriterRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}
	if req.BirthDate.IsZero() {
		validation.Fail(c, "birth_date", "required", "birth_date is required")
		return
	}

	created, err := h.service.Create(c.Request.Context(), dto.Writer{
		Name:      req.Name,
		BirthDate: *req.BirthDate,
	})
	if err != nil {
		writeServiceError(c, err, "WRITER_CREATE_FAILED", "failed to create writer")
		return
	}

	c.JSON(http.StatusCreated, WriterResponse{Data: created})
}

// UpdateWriter godoc
// @Summary      Replace a writer
// @Tags         writers
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Writer ID"
// @Param        payload  body      UpdateWriterRequest  true  "New writer state"
// @Success      200      {object}  WriterResponse
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or validation error"
// @Failure      404      {object}  validation.ErrorResponse  "Writer not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /writers/{id} [put]
func (h *WriterHandler) UpdateWriter(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, "INVALID_WRITER_ID", "invalid writer id")
		return
	}

	var req UpdateWriterRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}
	if req.BirthDate.IsZero() {
		validation.Fail(c, "birth_date", "required", "birth_date is required")
		return
	}

	h.update(c, dto.Writer{
		ID:        id,
		Name:      req.Name,
		BirthDate: *req.BirthDate,
	})
}

// PatchWriter godoc
// @Summary      Update a writer
// @Description  Partially update an existing writer
// @Tags         writers
// @Accept       json
// @Produce      json
// @Param        id       path      int                 true  "Writer ID"
// @Param        payload  body      PatchWriterRequest  true  "Writer fields to update"
// @Success      200      {object}  WriterResponse
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or validation error"
// @Failure      404      {object}  validation.ErrorResponse  "Writer not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /writers/{id} [patch]
func (h *WriterHandler) PatchWriter(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, "INVALID_WRITER_ID", "invalid writer id")
		return
	}

	var req PatchWriterRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	if req.Name == nil && req.BirthDate == nil {
		writeError(c, http.StatusBadRequest,
			"NO_FIELDS_TO_UPDATE",
			"at least one field must be provided to update",
		)
		return
	}
	if req.BirthDate != nil && req.BirthDate.IsZero() {
		validation.Fail(c, "birth_date", "required", "birth_date cannot be cleared")
		return
	}

	writer, found, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "WRITER_FETCH_FAILED", "failed to fetch writer")
		return
	}
	if !found {
		writeError(c, http.StatusNotFound, "WRITER_NOT_FOUND", "writer not found")
		return
	}

	if req.Name != nil {
		writer.Name = *req.Name
	}
	if req.BirthDate != nil {
		writer.BirthDate = *req.BirthDate
	}

	h.update(c, writer)
}

func (h *WriterHandler) update(c *gin.Context, in dto.Writer) {
	updated, err := h.service.Update(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err, "WRITER_UPDATE_FAILED", "failed to update writer")
		return
	}

	c.JSON(http.StatusOK, WriterResponse{Data: updated})
}

// DeleteWriter godoc
// @Summary      Delete a writer
// @Description  Delete a writer by ID; books that referenced it lose their writer
// @Tags         writers
// @Produce      json
// @Param        id   path      int                       true  "Writer ID"
// @Success      204  "No Content"
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Writer not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /writers/{id} [delete]
func (h *WriterHandler) DeleteWriter(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, "INVALID_WRITER_ID", "invalid writer id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "WRITER_DELETE_FAILED", "failed to delete writer")
		return
	}

	c.Status(http.StatusNoContent)
}
