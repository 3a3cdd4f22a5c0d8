package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/snnyvrz/library-manager/internal/model"
)

type mockBookRepository struct {
	mock.Mock
}

func (m *mockBookRepository) FindAll(ctx context.Context) ([]model.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *mockBookRepository) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *mockBookRepository) FindByTitle(ctx context.Context, title string) ([]model.Book, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *mockBookRepository) FindByReleaseDate(ctx context.Context, releaseDate time.Time) ([]model.Book, error) {
	args := m.Called(ctx, releaseDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *mockBookRepository) FindByTitleAndReleaseDate(ctx context.Context, title string, releaseDate time.Time) ([]model.Book, error) {
	args := m.Called(ctx, title, releaseDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *mockBookRepository) Save(ctx context.Context, book *model.Book) (*model.Book, error) {
	args := m.Called(ctx, book)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *mockBookRepository) Update(ctx context.Context, book *model.Book) (*model.Book, error) {
	args := m.Called(ctx, book)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *mockBookRepository) Delete(ctx context.Context, book *model.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

type mockWriterRepository struct {
	mock.Mock
}

func (m *mockWriterRepository) FindAll(ctx context.Context) ([]model.Writer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Writer), args.Error(1)
}

func (m *mockWriterRepository) FindByID(ctx context.Context, id int64) (*model.Writer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Writer), args.Error(1)
}

func (m *mockWriterRepository) FindByName(ctx context.Context, name string) ([]model.Writer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Writer), args.Error(1)
}

func (m *mockWriterRepository) FindByBirthDate(ctx context.Context, birthDate time.Time) ([]model.Writer, error) {
	args := m.Called(ctx, birthDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Writer), args.Error(1)
}

func (m *mockWriterRepository) FindByNameAndBirthDate(ctx context.Context, name string, birthDate time.Time) ([]model.Writer, error) {
	args := m.Called(ctx, name, birthDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Writer), args.Error(1)
}

func (m *mockWriterRepository) Save(ctx context.Context, writer *model.Writer) (*model.Writer, error) {
	args := m.Called(ctx, writer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Writer), args.Error(1)
}

func (m *mockWriterRepository) Update(ctx context.Context, writer *model.Writer) (*model.Writer, error) {
	args := m.Called(ctx, writer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Writer), args.Error(1)
}

func (m *mockWriterRepository) Delete(ctx context.Context, writer *model.Writer) error {
	args := m.Called(ctx, writer)
	return args.Error(0)
}
