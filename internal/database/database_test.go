package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkarpov/clip2org/internal/entities"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestDatabase_SaveBook(t *testing.T) {
	t.Run("creates book with clippings", func(t *testing.T) {
		db := setupTestDB(t)

		book := &entities.Book{
			Title: "The Big Short",
			Clippings: []entities.Clipping{
				{IsHighlight: true, Page: "28", Location: "428-30", Content: "first"},
				{IsHighlight: false, Location: "479"},
			},
		}
		require.NoError(t, db.SaveBook(book))

		books, err := db.GetAllBooks()
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "The Big Short", books[0].Title)
		assert.Len(t, books[0].Clippings, 2)
	})

	t.Run("appends to existing book on repeated title", func(t *testing.T) {
		db := setupTestDB(t)

		require.NoError(t, db.SaveBook(&entities.Book{
			Title:     "Walden",
			Clippings: []entities.Clipping{{IsHighlight: true, Content: "one"}},
		}))
		require.NoError(t, db.SaveBook(&entities.Book{
			Title:     "Walden",
			Clippings: []entities.Clipping{{IsHighlight: true, Content: "two"}},
		}))

		books, err := db.GetAllBooks()
		require.NoError(t, err)
		require.Len(t, books, 1)
		require.Len(t, books[0].Clippings, 2)
		assert.Equal(t, "one", books[0].Clippings[0].Content)
		assert.Equal(t, "two", books[0].Clippings[1].Content)
	})
}

func TestDatabase_GetAllBooks_Order(t *testing.T) {
	db := setupTestDB(t)

	for _, title := range []string{"Zed", "Abc", "Mid"} {
		require.NoError(t, db.SaveBook(&entities.Book{
			Title:     title,
			Clippings: []entities.Clipping{{IsHighlight: true, Content: "c"}},
		}))
	}

	books, err := db.GetAllBooks()
	require.NoError(t, err)
	require.Len(t, books, 3)
	assert.Equal(t, "Zed", books[0].Title)
	assert.Equal(t, "Abc", books[1].Title)
	assert.Equal(t, "Mid", books[2].Title)
}

func TestDatabase_CountClippings(t *testing.T) {
	db := setupTestDB(t)

	count, err := db.CountClippings()
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	require.NoError(t, db.SaveBook(&entities.Book{
		Title: "Book",
		Clippings: []entities.Clipping{
			{IsHighlight: true, Content: "a"},
			{IsHighlight: true, Content: "b"},
		},
	}))

	count, err = db.CountClippings()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
