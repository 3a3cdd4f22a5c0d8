package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snnyvrz/library-manager/internal/model"
	"github.com/snnyvrz/library-manager/internal/testutil"
)

func TestGormBookRepository_Finders(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	ctx := context.Background()

	orwell := testutil.SeedWriter(t, db, "George Orwell", testutil.Date(1903, time.June, 25))
	nineteen := testutil.SeedBook(t, db, &orwell, "1984", testutil.Date(1949, time.June, 8))
	farm := testutil.SeedBook(t, db, &orwell, "Animal Farm", testutil.Date(1945, time.August, 17))
	testutil.SeedBook(t, db, nil, "1984", testutil.Date(2003, time.May, 6))

	t.Run("find all", func(t *testing.T) {
		books, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, books, 3)
	})

	t.Run("find by title", func(t *testing.T) {
		books, err := repo.FindByTitle(ctx, "1984")
		require.NoError(t, err)
		assert.Len(t, books, 2)
	})

	t.Run("find by release date ignores time of day", func(t *testing.T) {
		evening := time.Date(1945, time.August, 17, 21, 0, 0, 0, time.UTC)
		books, err := repo.FindByReleaseDate(ctx, evening)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, farm.ID, books[0].ID)
	})

	t.Run("find by title and release date", func(t *testing.T) {
		books, err := repo.FindByTitleAndReleaseDate(ctx, "1984", testutil.Date(1949, time.June, 8))
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, nineteen.ID, books[0].ID)
		require.NotNil(t, books[0].WriterID)
		assert.Equal(t, orwell.ID, *books[0].WriterID)
	})

	t.Run("no match is an empty slice", func(t *testing.T) {
		books, err := repo.FindByTitle(ctx, "Brave New World")
		require.NoError(t, err)
		assert.NotNil(t, books)
		assert.Empty(t, books)
	})
}

func TestGormBookRepository_FindByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	ctx := context.Background()

	seeded := testutil.SeedBook(t, db, nil, "1984", testutil.Date(1949, time.June, 8))

	book, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "1984", book.Title)
	assert.True(t, book.ReleaseDate.Equal(testutil.Date(1949, time.June, 8)))

	_, err = repo.FindByID(ctx, seeded.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormBookRepository_SaveInsertsAndOverwrites(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	ctx := context.Background()

	created, err := repo.Save(ctx, &model.Book{
		Title:       "Brave New World",
		ReleaseDate: testutil.Date(1932, time.January, 1),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	writer := testutil.SeedWriter(t, db, "Aldous Huxley", testutil.Date(1894, time.July, 26))
	_, err = repo.Save(ctx, &model.Book{
		ID:          created.ID,
		Title:       "Brave New World Revisited",
		ReleaseDate: testutil.Date(1958, time.January, 1),
		WriterID:    &writer.ID,
		CreatedAt:   created.CreatedAt,
	})
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Brave New World Revisited", stored.Title)
	assert.True(t, stored.ReleaseDate.Equal(testutil.Date(1958, time.January, 1)))
	require.NotNil(t, stored.WriterID)
	assert.Equal(t, writer.ID, *stored.WriterID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGormBookRepository_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	ctx := context.Background()

	keep := testutil.SeedBook(t, db, nil, "Keep", testutil.Date(2000, time.January, 1))
	drop := testutil.SeedBook(t, db, nil, "Drop", testutil.Date(2000, time.January, 1))

	require.NoError(t, repo.Delete(ctx, &drop))

	_, err := repo.FindByID(ctx, drop.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindByID(ctx, keep.ID)
	assert.NoError(t, err)
}

func TestGormBookRepository_StoreErrors(t *testing.T) {
	repo := NewGormBookRepository(testutil.NewEmptyTestDB(t))

	_, err := repo.FindAll(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestGormBookRepository_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	ctx := context.Background()

	orwell := testutil.SeedWriter(t, db, "George Orwell", testutil.Date(1903, time.June, 25))
	seeded := testutil.SeedBook(t, db, &orwell, "Nineteen Eighty-Four", testutil.Date(1949, time.June, 8))

	t.Run("overwrites every column", func(t *testing.T) {
		updated, err := repo.Update(ctx, &model.Book{
			ID:          seeded.ID,
			Title:       "1984",
			ReleaseDate: time.Date(1949, time.June, 8, 18, 30, 0, 0, time.UTC),
			CreatedAt:   seeded.CreatedAt,
		})
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, updated.ID)

		stored, err := repo.FindByID(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "1984", stored.Title)
		assert.Nil(t, stored.WriterID)
		assert.True(t, stored.ReleaseDate.Equal(testutil.Date(1949, time.June, 8)))
		assert.True(t, stored.CreatedAt.Equal(seeded.CreatedAt))
	})

	t.Run("deleted row is not resurrected", func(t *testing.T) {
		stale, err := repo.FindByID(ctx, seeded.ID)
		require.NoError(t, err)
		require.NoError(t, repo.Delete(ctx, stale))

		_, err = repo.Update(ctx, stale)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = repo.FindByID(ctx, seeded.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGormBookRepository_DanglingWriter(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	ctx := context.Background()
	missing := int64(777)

	_, err := repo.Save(ctx, &model.Book{
		Title:       "Orphan",
		ReleaseDate: testutil.Date(2000, time.January, 1),
		WriterID:    &missing,
	})
	assert.ErrorIs(t, err, ErrInvalidReference)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	seeded := testutil.SeedBook(t, db, nil, "Orphan", testutil.Date(2000, time.January, 1))
	seeded.WriterID = &missing
	_, err = repo.Update(ctx, &seeded)
	assert.ErrorIs(t, err, ErrInvalidReference)

	stored, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.WriterID)
}
