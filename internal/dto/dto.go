// Package dto holds the caller-facing transfer objects for books and writers.
package dto

import "github.com/snnyvrz/library-manager/internal/model"

type Book struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	ReleaseDate model.Date `json:"release_date" swaggertype:"string" example:"1949-06-08"`
	WriterID    *int64     `json:"writer_id,omitempty"`
}

type Writer struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	BirthDate model.Date `json:"birth_date" swaggertype:"string" example:"1903-06-25"`
}
