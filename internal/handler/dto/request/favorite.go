package request

import "github.com/google/uuid"

type AddFavoriteRequest struct {
	TeamID uuid.UUID `json:"team_id" binding:"required"`
	Color  *string   `json:"color,omitempty"`
}
