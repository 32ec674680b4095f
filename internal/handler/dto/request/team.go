package request

type TeamRequest struct {
	Name        string  `json:"name" binding:"required"`
	Genre       *string `json:"genre,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	SNSLink     *string `json:"sns_link,omitempty"`
}
