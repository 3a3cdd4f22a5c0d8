package handler

import (
	"github.com/snnyvrz/library-manager/internal/dto"
	"github.com/snnyvrz/library-manager/internal/model"
)

type CreateBookRequest struct {
	Title       string      `json:"title" binding:"required,min=1,max=255"`
	ReleaseDate *model.Date `json:"release_date" binding:"required" swaggertype:"string" example:"1949-06-08"`
	WriterID    *int64      `json:"writer_id" binding:"omitempty,min=1"`
}

// UpdateBookRequest replaces every field of a book. An absent writer_id
// clears the writer.
type UpdateBookRequest struct {
	Title       string      `json:"title" binding:"required,min=1,max=255"`
	ReleaseDate *model.Date `json:"release_date" binding:"required" swaggertype:"string" example:"1949-06-08"`
	WriterID    *int64      `json:"writer_id" binding:"omitempty,min=1"`
}

type PatchBookRequest struct {
	Title       *string     `json:"title" binding:"omitempty,min=1,max=255"`
	ReleaseDate *model.Date `json:"release_date" swaggertype:"string" example:"1949-06-08"`
	WriterID    *int64      `json:"writer_id" binding:"omitempty,min=1"`
}

type BookResponse struct {
	Data dto.Book `json:"data"`
}

type ListBooksResponse struct {
	Data []dto.Book `json:"data"`
}
