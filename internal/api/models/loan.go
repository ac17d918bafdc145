package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LoanStatus string

const (
	LoanStatusActive   LoanStatus = "active"
	LoanStatusReturned LoanStatus = "returned"
	LoanStatusOverdue  LoanStatus = "overdue"
)

type Loan struct {
	ID         string     `gorm:"primaryKey;type:uuid" json:"id"`
	UserID     string     `gorm:"index;not null" json:"user_id"`
	BookID     string     `gorm:"index;not null" json:"book_id"`
	LoanDate   time.Time  `gorm:"not null" json:"loan_date"`
	ReturnDate time.Time  `gorm:"not null" json:"return_date"`
	Returned   bool       `gorm:"not null;default:false" json:"returned"`
	Status     LoanStatus `gorm:"not null;default:'active'" json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// associations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Book *Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

// BeforeCreate hook to set UUID before creating a Loan
func (l *Loan) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return
}

func (Loan) TableName() string {
	return "loans"
}

// DeriveStatus computes the lifecycle status of a loan at the given instant.
// It is the single source of truth for the status field: callers recompute it
// before every persist and on every read that reports status, since "overdue"
// depends on wall-clock time and a stored value can go stale.
func DeriveStatus(now time.Time, l *Loan) LoanStatus {
	if l.Returned {
		return LoanStatusReturned
	}
	if now.After(l.ReturnDate) {
		return LoanStatusOverdue
	}
	return LoanStatusActive
}

// IsOverdue reports whether an unreturned loan is past its due date.
func (l *Loan) IsOverdue(now time.Time) bool {
	return DeriveStatus(now, l) == LoanStatusOverdue
}
