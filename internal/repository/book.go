package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/snnyvrz/library-manager/internal/model"
)

type BookRepository interface {
	FindAll(ctx context.Context) ([]model.Book, error)
	FindByID(ctx context.Context, id int64) (*model.Book, error)
	FindByTitle(ctx context.Context, title string) ([]model.Book, error)
	FindByReleaseDate(ctx context.Context, releaseDate time.Time) ([]model.Book, error)
	FindByTitleAndReleaseDate(ctx context.Context, title string, releaseDate time.Time) ([]model.Book, error)
	Save(ctx context.Context, book *model.Book) (*model.Book, error)
	Update(ctx context.Context, book *model.Book) (*model.Book, error)
	Delete(ctx context.Context, book *model.Book) error
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) FindAll(ctx context.Context) ([]model.Book, error) {
	return r.find(ctx, "")
}

// FindByID returns ErrNotFound when no book has the given id.
func (r *GormBookRepository) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &book, nil
}

func (r *GormBookRepository) FindByTitle(ctx context.Context, title string) ([]model.Book, error) {
	return r.find(ctx, "title = ?", title)
}

func (r *GormBookRepository) FindByReleaseDate(ctx context.Context, releaseDate time.Time) ([]model.Book, error) {
	return r.find(ctx, "release_date = ?", model.DateOf(releaseDate))
}

func (r *GormBookRepository) FindByTitleAndReleaseDate(ctx context.Context, title string, releaseDate time.Time) ([]model.Book, error) {
	return r.find(ctx, "title = ? AND release_date = ?", title, model.DateOf(releaseDate))
}

// Save inserts the book when it has no id and otherwise overwrites every
// column of the stored row, inserting it if the id is unknown.
func (r *GormBookRepository) Save(ctx context.Context, book *model.Book) (*model.Book, error) {
	if err := r.db.WithContext(ctx).Save(book).Error; err != nil {
		return nil, fmt.Errorf("save book: %w", translateError(err))
	}
	return book, nil
}

// Update overwrites every column of the stored book row. Unlike Save it never
// inserts: ErrNotFound is returned when no row has book.ID.
func (r *GormBookRepository) Update(ctx context.Context, book *model.Book) (*model.Book, error) {
	res := r.db.WithContext(ctx).
		Model(book).
		Select("*").
		Omit(clause.Associations).
		Updates(book)
	if res.Error != nil {
		return nil, fmt.Errorf("update book %d: %w", book.ID, translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return book, nil
}

func (r *GormBookRepository) Delete(ctx context.Context, book *model.Book) error {
	if err := r.db.WithContext(ctx).Delete(&model.Book{}, "id = ?", book.ID).Error; err != nil {
		return fmt.Errorf("delete book %d: %w", book.ID, translateError(err))
	}
	return nil
}

func (r *GormBookRepository) find(ctx context.Context, where string, args ...any) ([]model.Book, error) {
	q := r.db.WithContext(ctx).Order("id")
	if where != "" {
		q = q.Where(where, args...)
	}

	books := []model.Book{}
	if err := q.Find(&books).Error; err != nil {
		return nil, fmt.Errorf("find books: %w", translateError(err))
	}
	return books, nil
}
