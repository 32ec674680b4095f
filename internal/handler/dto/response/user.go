package response

import (
	"time"

	"stagepass/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Phone        *string   `json:"phone,omitempty"`
	ProfileImage *string   `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromUserView(rm *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:           rm.ID,
		Email:        rm.Email,
		Username:     rm.Username,
		Name:         rm.Name,
		Role:         rm.Role,
		Phone:        rm.Phone,
		ProfileImage: rm.ProfileImage,
		CreatedAt:    rm.CreatedAt,
	}
}

func FromUserViews(rms []*queries.UserView) []*UserResponse {
	responses := make([]*UserResponse, len(rms))
	for i, rm := range rms {
		responses[i] = FromUserView(rm)
	}
	return responses
}
