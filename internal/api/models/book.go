package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string    `gorm:"not null;size:200" json:"name"`
	Description *string   `json:"description,omitempty" gorm:"size:2000"`
	Author      *string   `json:"author,omitempty" gorm:"size:100"`
	ISBN        *string   `json:"isbn,omitempty" gorm:"uniqueIndex"`
	Price       float64   `gorm:"not null" json:"price"`
	Stock       int       `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	CategoryID  string    `gorm:"index;not null" json:"category_id"`
	CoverURL    *string   `json:"cover_url,omitempty"`
	Pages       *int      `json:"pages,omitempty"`
	Year        *int      `json:"year,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// association
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate hook to set UUID before creating a Book
func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}

func (Book) TableName() string {
	return "books"
}
