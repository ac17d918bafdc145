package dto

import "librehub/internal/api/models"

type TestimonialRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
	Rating  int    `json:"rating" binding:"required"`
}

func (d TestimonialRequest) ToModel() models.Testimonial {
	return models.Testimonial{
		Content: d.Content,
		Rating:  d.Rating,
	}
}
