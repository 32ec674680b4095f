package response

import (
	"time"

	"stagepass/internal/usecase/queries"

	"github.com/google/uuid"
)

type InquiryResponse struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"userId"`
	UserName   string     `json:"userName"`
	UserEmail  string     `json:"userEmail"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Status     string     `json:"status"`
	Answer     *string    `json:"answer,omitempty"`
	AnsweredAt *time.Time `json:"answeredAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func FromInquiryViews(rms []*queries.InquiryView) []*InquiryResponse {
	responses := make([]*InquiryResponse, len(rms))
	for i, rm := range rms {
		responses[i] = &InquiryResponse{
			ID:         rm.ID,
			UserID:     rm.UserID,
			UserName:   rm.UserName,
			UserEmail:  rm.UserEmail,
			Title:      rm.Title,
			Content:    rm.Content,
			Status:     rm.Status,
			Answer:     rm.Answer,
			AnsweredAt: rm.AnsweredAt,
			CreatedAt:  rm.CreatedAt,
		}
	}
	return responses
}
