package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Testimonial struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	Content   string    `gorm:"not null;size:1000" json:"content"`
	Rating    int       `gorm:"not null" json:"rating"` // 1..5
	Approved  bool      `gorm:"not null;default:false" json:"approved"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return
}

func (Testimonial) TableName() string {
	return "testimonials"
}
