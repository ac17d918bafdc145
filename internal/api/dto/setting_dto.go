package dto

import "librehub/internal/api/models"

type SettingRequest struct {
	SiteName     string `json:"site_name" binding:"required"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	MaxLoanDays  int    `json:"max_loan_days" binding:"required"`
	Maintenance  bool   `json:"maintenance"`
}

func (d SettingRequest) ToModel() models.Setting {
	return models.Setting{
		SiteName:     d.SiteName,
		ContactEmail: d.ContactEmail,
		MaxLoanDays:  d.MaxLoanDays,
		Maintenance:  d.Maintenance,
	}
}
