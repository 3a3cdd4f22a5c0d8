package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/snnyvrz/library-manager/internal/dto"
	"github.com/snnyvrz/library-manager/internal/mapper"
	"github.com/snnyvrz/library-manager/internal/repository"
)

type BookService struct {
	books   repository.BookRepository
	writers repository.WriterRepository
	logger  *zap.Logger
}

func NewBookService(books repository.BookRepository, writers repository.WriterRepository, logger *zap.Logger) *BookService {
	return &BookService{
		books:   books,
		writers: writers,
		logger:  logger.Named("book_service"),
	}
}

func (s *BookService) FindAll(ctx context.Context) ([]dto.Book, error) {
	books, err := s.books.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.BooksToDTO(books), nil
}

// FindByID reports found == false when the book does not exist; that is not
// an error.
func (s *BookService) FindByID(ctx context.Context, id int64) (dto.Book, bool, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Debug("book lookup missed", zap.Int64("id", id))
			return dto.Book{}, false, nil
		}
		return dto.Book{}, false, err
	}
	return mapper.BookToDTO(*book), true, nil
}

func (s *BookService) FindByTitle(ctx context.Context, title string) ([]dto.Book, error) {
	books, err := s.books.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	return mapper.BooksToDTO(books), nil
}

func (s *BookService) FindByReleaseDate(ctx context.Context, releaseDate time.Time) ([]dto.Book, error) {
	books, err := s.books.FindByReleaseDate(ctx, releaseDate)
	if err != nil {
		return nil, err
	}
	return mapper.BooksToDTO(books), nil
}

func (s *BookService) FindByTitleAndReleaseDate(ctx context.Context, title string, releaseDate time.Time) ([]dto.Book, error) {
	books, err := s.books.FindByTitleAndReleaseDate(ctx, title, releaseDate)
	if err != nil {
		return nil, err
	}
	return mapper.BooksToDTO(books), nil
}

// Create stores a new book. Any id in the input is ignored.
func (s *BookService) Create(ctx context.Context, in dto.Book) (dto.Book, error) {
	if err := s.requireWriter(ctx, in.WriterID); err != nil {
		return dto.Book{}, err
	}

	entity := mapper.BookToEntity(in)
	entity.ID = 0

	saved, err := s.books.Save(ctx, &entity)
	if err != nil {
		return dto.Book{}, s.saveError(err, in.WriterID)
	}

	s.logger.Info("book created", zap.Int64("id", saved.ID))
	return mapper.BookToDTO(*saved), nil
}

// Update overwrites the stored book with in. The book, and the writer when
// in.WriterID is set, must already exist; otherwise a *NotFoundError is
// returned and nothing is written.
func (s *BookService) Update(ctx context.Context, in dto.Book) (dto.Book, error) {
	stored, err := s.books.FindByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.Book{}, bookNotFound(in.ID)
		}
		return dto.Book{}, err
	}

	if err := s.requireWriter(ctx, in.WriterID); err != nil {
		return dto.Book{}, err
	}

	entity := mapper.BookToEntity(in)
	entity.CreatedAt = stored.CreatedAt

	saved, err := s.books.Update(ctx, &entity)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.Book{}, bookNotFound(in.ID)
		}
		return dto.Book{}, s.saveError(err, in.WriterID)
	}

	s.logger.Info("book updated", zap.Int64("id", saved.ID))
	return mapper.BookToDTO(*saved), nil
}

func (s *BookService) Delete(ctx context.Context, id int64) error {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return bookNotFound(id)
		}
		return err
	}

	if err := s.books.Delete(ctx, book); err != nil {
		return err
	}

	s.logger.Info("book deleted", zap.Int64("id", id))
	return nil
}

func (s *BookService) requireWriter(ctx context.Context, writerID *int64) error {
	if writerID == nil {
		return nil
	}
	if _, err := s.writers.FindByID(ctx, *writerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return writerNotFound(*writerID)
		}
		return fmt.Errorf("check writer %d: %w", *writerID, err)
	}
	return nil
}

// saveError maps a foreign key violation, a writer deleted between the check
// and the write, to the writer's NotFoundError.
func (s *BookService) saveError(err error, writerID *int64) error {
	if writerID != nil && errors.Is(err, repository.ErrInvalidReference) {
		return writerNotFound(*writerID)
	}
	return err
}
