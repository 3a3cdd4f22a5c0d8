package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/library-manager/internal/dto"
	"github.com/snnyvrz/library-manager/internal/validation"
)

type BookService interface {
	FindAll(ctx context.Context) ([]dto.Book, error)
	FindByID(ctx context.Context, id int64) (dto.Book, bool, error)
	FindByTitle(ctx context.Context, title string) ([]dto.Book, error)
	FindByReleaseDate(ctx context.Context, releaseDate time.Time) ([]dto.Book, error)
	FindByTitleAndReleaseDate(ctx context.Context, title string, releaseDate time.Time) ([]dto.Book, error)
	Create(ctx context.Context, in dto.Book) (dto.Book, error)
	Update(ctx context.Context, in dto.Book) (dto.Book, error)
	Delete(ctx context.Context, id int64) error
}

type BookHandler struct {
	service BookService
}

func NewBookHandler(service BookService) *BookHandler {
	return &BookHandler{service: service}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBookByID)
		books.POST("", h.CreateBook)
		books.PUT("/:id", h.UpdateBook)
		books.PATCH("/:id", h.PatchBook)
		books.DELETE("/:id", h.DeleteBook)
	}
}

// ListBooks godoc
// @Summary      List books
// @Description  List all books, or the books matching title and/or release_date exactly
// @Tags         books
// @Produce      json
// @Param        title         query     string  false  "Exact title"
// @Param        release_date  query     string  false  "Exact release date (YYYY-MM-DD)" example(1949-06-08)
// @Success      200  {object}  ListBooksResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid query parameters"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	ctx := c.Request.Context()

	title, hasTitle := c.GetQuery("title")

	releaseDate, hasDate, err := parseDateQuery(c, "release_date")
	if err != nil {
		writeError(c, http.StatusBadRequest,
			"INVALID_RELEASE_DATE",
			"release_date must be in format YYYY-MM-DD",
		)
		return
	}

	var books []dto.Book
	switch {
	case hasTitle && hasDate:
		books, err = h.service.FindByTitleAndReleaseDate(ctx, title, releaseDate)
	case hasTitle:
		books, err = h.service.FindByTitle(ctx, title)
	case hasDate:
		books, err = h.service.FindByReleaseDate(ctx, releaseDate)
	default:
		books, err = h.service.FindAll(ctx)
	}
	if err != nil {
		writeServiceError(c, err, "BOOK_LIST_FAILED", "failed to fetch books")
		return
	}

	c.JSON(http.StatusOK, ListBooksResponse{Data: books})
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  BookResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, "INVALID_BOOK_ID", "invalid book id")
		return
	}

	book, found, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "BOOK_FETCH_FAILED", "failed to fetch book")
		return
	}
	if !found {
		writeError(c, http.StatusNotFound, "BOOK_NOT_FOUND", "book not found")
		return
	}

	c.JSON(http.StatusOK, BookResponse{Data: book})
}

// CreateBook godoc
// @Summary      Create a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateBookRequest          true  "Book to create"
// @Success      201      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      404      {object}  validation.ErrorResponse   "Writer not found"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}
	if req.ReleaseDate.IsZero() {
		validation.Fail(c, "release_date", "required", "release_date is required")
		return
	}

	created, err := h.service.Create(c.Request.Context(), dto.Book{
		Title:       req.Title,
		ReleaseDate: *req.ReleaseDate,
		WriterID:    req.WriterID,
	})
	if err != nil {
		writeServiceError(c, err, "BOOK_CREATE_FAILED", "failed to create book")
		return
	}

	c.JSON(http.StatusCreated, BookResponse{Data: created})
}

// UpdateBook godoc
// @Summary      Replace a book
// @Description  Overwrite every field of an existing book
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      int                 true  "Book ID"
// @Param        payload  body      UpdateBookRequest   true  "New book state"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse   "Book or writer not found"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, "INVALID_BOOK_ID", "invalid book id")
		return
	}

	var req UpdateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}
	if req.ReleaseDate.IsZero() {
		validation.Fail(c, "release_date", "required", "release_date is required")
		return
	}

	h.update(c, dto.Book{
		ID:          id,
		Title:       req.Title,
		ReleaseDate: *req.ReleaseDate,
		WriterID:    req.WriterID,
	})
}

// PatchBook godoc
// @Summary      Update a book
// @Description  Partially update a book; omitted fields keep their value
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      int                true  "Book ID"
// @Param        payload  body      PatchBookRequest   true  "Fields to update"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse   "Book or writer not found"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [patch]
func (h *BookHandler) PatchBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, "INVALID_BOOK_ID", "invalid book id")
		return
	}

	var req PatchBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	if req.Title == nil && req.ReleaseDate == nil && req.WriterID == nil {
		writeError(c, http.StatusBadRequest,
			"NO_FIELDS_TO_UPDATE",
			"at least one field must be provided to update",
		)
		return
	}
	if req.ReleaseDate != nil && req.ReleaseDate.IsZero() {
		validation.Fail(c, "release_date", "required", "release_date cannot be cleared")
		return
	}

	book, found, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "BOOK_FETCH_FAILED", "failed to fetch book")
		return
	}
	if !found {
		writeError(c, http.StatusNotFound, "BOOK_NOT_FOUND", "book not found")
		return
	}

	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.ReleaseDate != nil {
		book.ReleaseDate = *req.ReleaseDate
	}
	if req.WriterID != nil {
		book.WriterID = req.WriterID
	}

	h.update(c, book)
}

func (h *BookHandler) update(c *gin.Context, in dto.Book) {
	updated, err := h.service.Update(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err, "BOOK_UPDATE_FAILED", "failed to update book")
		return
	}

	c.JSON(http.StatusOK, BookResponse{Data: updated})
}

// DeleteBook godoc
// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      204  {string}  string  "No content"
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest, "INVALID_BOOK_ID", "invalid book id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "BOOK_DELETE_FAILED", "failed to delete book")
		return
	}

	c.Status(http.StatusNoContent)
}
