package dto

import "librehub/internal/api/models"

type CategoryRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description,omitempty"`
}

func (d CategoryRequest) ToModel() models.Category {
	return models.Category{
		Name:        d.Name,
		Description: d.Description,
	}
}
