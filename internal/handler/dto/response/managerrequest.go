package response

import (
	"time"

	"stagepass/internal/usecase/queries"

	"github.com/google/uuid"
)

type ManagerRequestResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"userId"`
	UserName     string     `json:"userName"`
	UserEmail    string     `json:"userEmail"`
	TeamName     string     `json:"teamName"`
	Description  *string    `json:"description,omitempty"`
	SNSLink      *string    `json:"snsLink,omitempty"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	RejectReason *string    `json:"rejectReason,omitempty"`
	ProcessedAt  *time.Time `json:"processedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func FromManagerRequestViews(rms []*queries.ManagerRequestView) []*ManagerRequestResponse {
	responses := make([]*ManagerRequestResponse, len(rms))
	for i, rm := range rms {
		responses[i] = &ManagerRequestResponse{
			ID:           rm.ID,
			UserID:       rm.UserID,
			UserName:     rm.UserName,
			UserEmail:    rm.UserEmail,
			TeamName:     rm.TeamName,
			Description:  rm.Description,
			SNSLink:      rm.SNSLink,
			Reason:       rm.Reason,
			Status:       rm.Status,
			RejectReason: rm.RejectReason,
			ProcessedAt:  rm.ProcessedAt,
			CreatedAt:    rm.CreatedAt,
		}
	}
	return responses
}
