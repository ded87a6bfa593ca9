package entities

import (
	"time"

	"gorm.io/gorm"
)

// Book is a source title that clippings were taken from.
type Book struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"uniqueIndex;size:512" json:"title"`
	Clippings []Clipping     `gorm:"foreignKey:BookID" json:"clippings,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// Clipping is one imported highlight, note or bookmark. Page and
// Location keep the device's numeric-or-range notation; AddedOn keeps
// the free-form date text from the export.
type Clipping struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BookID      uint      `gorm:"index" json:"book_id"`
	IsHighlight bool      `json:"is_highlight"`
	Header      string    `gorm:"size:256" json:"header,omitempty"`
	Page        string    `gorm:"size:20" json:"page,omitempty"`
	Location    string    `gorm:"size:20" json:"location,omitempty"`
	AddedOn     string    `gorm:"size:128" json:"added_on,omitempty"`
	Content     string    `gorm:"type:text" json:"content,omitempty"`
	Book        Book      `gorm:"foreignKey:BookID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Book) TableName() string {
	return "books"
}

func (Clipping) TableName() string {
	return "clippings"
}
