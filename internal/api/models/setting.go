package models

import "time"

// Setting is the site-settings singleton row. There is at most one record;
// reads go through the cache layer and updates invalidate it.
type Setting struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SiteName     string    `gorm:"not null;default:'LibreHub'" json:"site_name"`
	ContactEmail string    `json:"contact_email"`
	MaxLoanDays  int       `gorm:"not null;default:14" json:"max_loan_days"`
	Maintenance  bool      `gorm:"not null;default:false" json:"maintenance"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}
