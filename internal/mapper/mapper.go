// Package mapper converts between persisted entities and transfer objects.
package mapper

import (
	"github.com/snnyvrz/library-manager/internal/dto"
	"github.com/snnyvrz/library-manager/internal/model"
)

func BookToDTO(b model.Book) dto.Book {
	return dto.Book{
		ID:          b.ID,
		Title:       b.Title,
		ReleaseDate: model.NewDate(b.ReleaseDate),
		WriterID:    copyID(b.WriterID),
	}
}

// BookToEntity leaves the bookkeeping timestamps zero.
func BookToEntity(d dto.Book) model.Book {
	return model.Book{
		ID:          d.ID,
		Title:       d.Title,
		ReleaseDate: model.DateOf(d.ReleaseDate.Time),
		WriterID:    copyID(d.WriterID),
	}
}

func BooksToDTO(books []model.Book) []dto.Book {
	out := make([]dto.Book, 0, len(books))
	for _, b := range books {
		out = append(out, BookToDTO(b))
	}
	return out
}

func WriterToDTO(w model.Writer) dto.Writer {
	return dto.Writer{
		ID:        w.ID,
		Name:      w.Name,
		BirthDate: model.NewDate(w.BirthDate),
	}
}

func WriterToEntity(d dto.Writer) model.Writer {
	return model.Writer{
		ID:        d.ID,
		Name:      d.Name,
		BirthDate: model.DateOf(d.BirthDate.Time),
	}
}

func WritersToDTO(writers []model.Writer) []dto.Writer {
	out := make([]dto.Writer, 0, len(writers))
	for _, w := range writers {
		out = append(out, WriterToDTO(w))
	}
	return out
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
