package response

import (
	"time"

	"stagepass/internal/usecase/queries"

	"github.com/google/uuid"
)

type TeamResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Genre       *string   `json:"genre,omitempty"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	SNSLink     *string   `json:"snsLink,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromTeamView(rm *queries.TeamView) *TeamResponse {
	return &TeamResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		OwnerID:     rm.OwnerID,
		Genre:       rm.Genre,
		Description: rm.Description,
		ImageURL:    rm.ImageURL,
		SNSLink:     rm.SNSLink,
		CreatedAt:   rm.CreatedAt,
	}
}

func FromTeamViews(rms []*queries.TeamView) []*TeamResponse {
	responses := make([]*TeamResponse, len(rms))
	for i, rm := range rms {
		responses[i] = FromTeamView(rm)
	}
	return responses
}
