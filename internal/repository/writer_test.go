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

func TestGormWriterRepository_Finders(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormWriterRepository(db)
	ctx := context.Background()

	orwell := testutil.SeedWriter(t, db, "George Orwell", testutil.Date(1903, time.June, 25))
	testutil.SeedWriter(t, db, "Aldous Huxley", testutil.Date(1894, time.July, 26))
	testutil.SeedWriter(t, db, "George Orwell", testutil.Date(1950, time.January, 1))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byName, err := repo.FindByName(ctx, "George Orwell")
	require.NoError(t, err)
	assert.Len(t, byName, 2)

	byDate, err := repo.FindByBirthDate(ctx, testutil.Date(1894, time.July, 26))
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Equal(t, "Aldous Huxley", byDate[0].Name)

	both, err := repo.FindByNameAndBirthDate(ctx, "George Orwell", testutil.Date(1903, time.June, 25))
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, orwell.ID, both[0].ID)

	none, err := repo.FindByName(ctx, "Nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGormWriterRepository_SaveAndFindByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormWriterRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &model.Writer{Name: "Yevgeny Zamyatin", BirthDate: testutil.Date(1884, time.February, 1)})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	got, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Yevgeny Zamyatin", got.Name)

	_, err = repo.FindByID(ctx, saved.ID+1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormWriterRepository_DeleteDetachesBooks(t *testing.T) {
	db := testutil.NewTestDB(t)
	writers := NewGormWriterRepository(db)
	books := NewGormBookRepository(db)
	ctx := context.Background()

	orwell := testutil.SeedWriter(t, db, "George Orwell", testutil.Date(1903, time.June, 25))
	book := testutil.SeedBook(t, db, &orwell, "1984", testutil.Date(1949, time.June, 8))

	require.NoError(t, writers.Delete(ctx, &orwell))

	_, err := writers.FindByID(ctx, orwell.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	stored, err := books.FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.WriterID)
}

func TestGormWriterRepository_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormWriterRepository(db)
	ctx := context.Background()

	seeded := testutil.SeedWriter(t, db, "Eric Blair", testutil.Date(1903, time.June, 25))

	seeded.Name = "George Orwell"
	_, err := repo.Update(ctx, &seeded)
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "George Orwell", stored.Name)

	require.NoError(t, repo.Delete(ctx, stored))

	_, err = repo.Update(ctx, stored)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
