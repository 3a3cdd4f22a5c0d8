package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/snnyvrz/library-manager/internal/model"
)

type WriterRepository interface {
	FindAll(ctx context.Context) ([]model.Writer, error)
	FindByID(ctx context.Context, id int64) (*model.Writer, error)
	FindByName(ctx context.Context, name string) ([]model.Writer, error)
	FindByBirthDate(ctx context.Context, birthDate time.Time) ([]model.Writer, error)
	FindByNameAndBirthDate(ctx context.Context, name string, birthDate time.Time) ([]model.Writer, error)
	Save(ctx context.Context, writer *model.Writer) (*model.Writer, error)
	Update(ctx context.Context, writer *model.Writer) (*model.Writer, error)
	Delete(ctx context.Context, writer *model.Writer) error
}

type GormWriterRepository struct {
	db *gorm.DB
}

func NewGormWriterRepository(db *gorm.DB) *GormWriterRepository {
	return &GormWriterRepository{db: db}
}

func (r *GormWriterRepository) FindAll(ctx context.Context) ([]model.Writer, error) {
	return r.find(ctx, "")
}

func (r *GormWriterRepository) FindByID(ctx context.Context, id int64) (*model.Writer, error) {
	var writer model.Writer
	if err := r.db.WithContext(ctx).First(&writer, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &writer, nil
}

func (r *GormWriterRepository) FindByName(ctx context.Context, name string) ([]model.Writer, error) {
	return r.find(ctx, "name = ?", name)
}

func (r *GormWriterRepository) FindByBirthDate(ctx context.Context, birthDate time.Time) ([]model.Writer, error) {
	return r.find(ctx, "birth_date = ?", model.DateOf(birthDate))
}

func (r *GormWriterRepository) FindByNameAndBirthDate(ctx context.Context, name string, birthDate time.Time) ([]model.Writer, error) {
	return r.find(ctx, "name = ? AND birth_date = ?", name, model.DateOf(birthDate))
}

func (r *GormWriterRepository) Save(ctx context.Context, writer *model.Writer) (*model.Writer, error) {
	if err := r.db.WithContext(ctx).Save(writer).Error; err != nil {
		return nil, fmt.Errorf("save writer: %w", translateError(err))
	}
	return writer, nil
}

// Delete removes the writer and detaches its books in one transaction.
// Update overwrites every column of the stored writer row. Unlike Save it never
// inserts: ErrNotFound is returned when no row has writer.ID.
func (r *GormWriterRepository) Update(ctx context.Context, writer *model.Writer) (*model.Writer, error) {
	res := r.db.WithContext(ctx).
		Model(writer).
		Select("*").
		Omit(clause.Associations).
		Updates(writer)
	if res.Error != nil {
		return nil, fmt.Errorf("update writer %d: %w", writer.ID, translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return writer, nil
}

func (r *GormWriterRepository) Delete(ctx context.Context, writer *model.Writer) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Book{}).
			Where("writer_id = ?", writer.ID).
			UpdateColumn("writer_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Writer{}, "id = ?", writer.ID).Error
	})
	if err != nil {
		return fmt.Errorf("delete writer %d: %w", writer.ID, translateError(err))
	}
	return nil
}

func (r *GormWriterRepository) find(ctx context.Context, where string, args ...any) ([]model.Writer, error) {
	q := r.db.WithContext(ctx).Order("id")
	if where != "" {
		q = q.Where(where, args...)
	}

	writers := []model.Writer{}
	if err := q.Find(&writers).Error; err != nil {
		return nil, fmt.Errorf("find writers: %w", translateError(err))
	}
	return writers, nil
}
