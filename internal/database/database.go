package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dkarpov/clip2org/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.Book{}, &entities.Clipping{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveBook creates the book on first sight of its title, otherwise
// reuses the existing row, and appends the attached clippings.
func (d *Database) SaveBook(book *entities.Book) error {
	clips := book.Clippings
	book.Clippings = nil

	var existing entities.Book
	err := d.DB.Where("title = ?", book.Title).First(&existing).Error
	switch {
	case err == nil:
		book.ID = existing.ID
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := d.DB.Create(book).Error; err != nil {
			return fmt.Errorf("failed to create book %q: %w", book.Title, err)
		}
	default:
		return fmt.Errorf("failed to look up book %q: %w", book.Title, err)
	}

	for i := range clips {
		clips[i].BookID = book.ID
	}
	if len(clips) > 0 {
		if err := d.DB.Create(&clips).Error; err != nil {
			return fmt.Errorf("failed to save clippings for %q: %w", book.Title, err)
		}
	}
	book.Clippings = clips

	return nil
}

// GetAllBooks returns every book with its clippings. Books come back in
// first-import order and clippings in insertion order, so a rebuilt
// outline keeps the ordering of the original import.
func (d *Database) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := d.DB.
		Preload("Clippings", func(db *gorm.DB) *gorm.DB {
			return db.Order("clippings.id ASC")
		}).
		Order("books.id ASC").
		Find(&books).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load books: %w", err)
	}
	return books, nil
}

func (d *Database) CountClippings() (int64, error) {
	var count int64
	if err := d.DB.Model(&entities.Clipping{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
