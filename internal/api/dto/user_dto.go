package dto

import "librehub/internal/api/models"

// UpdateUserRequest carries account edits. Passwords are not accepted here;
// they only change through the auth flow.
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=3,max=50"`
	Email *string `json:"email" binding:"omitempty,email"`
	Role  *string `json:"role" binding:"omitempty,oneof=user librarian admin"`
}

type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}

func NewUserListResponse(users []models.User) UserListResponse {
	items := make([]UserResponse, 0, len(users))
	for i := range users {
		items = append(items, FromModelToUserResponse(&users[i]))
	}
	return UserListResponse{Items: items, Total: len(items)}
}
