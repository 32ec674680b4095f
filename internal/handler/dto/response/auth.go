package response

import (
	"stagepass/internal/usecase/commands"

	"github.com/google/uuid"
)

type AuthResponse struct {
	UserID uuid.UUID `json:"userId"`
	Role   string    `json:"role"`
	Token  string    `json:"token"`
}

func FromAuthResult(result *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		UserID: result.UserID,
		Role:   result.Role.String(),
		Token:  result.Token,
	}
}
