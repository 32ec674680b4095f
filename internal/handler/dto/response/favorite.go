package response

import (
	"time"

	"stagepass/internal/usecase/queries"

	"github.com/google/uuid"
)

type FavoriteResponse struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"teamId"`
	TeamName  string    `json:"teamName"`
	Color     *string   `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromFavoriteViews(rms []*queries.FavoriteView) []*FavoriteResponse {
	responses := make([]*FavoriteResponse, len(rms))
	for i, rm := range rms {
		responses[i] = &FavoriteResponse{
			ID:        rm.ID,
			TeamID:    rm.TeamID,
			TeamName:  rm.TeamName,
			Color:     rm.Color,
			CreatedAt: rm.CreatedAt,
		}
	}
	return responses
}
