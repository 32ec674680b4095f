package request

type ManagerRequestRequest struct {
	TeamName    string  `json:"team_name" binding:"required"`
	Description *string `json:"description,omitempty"`
	SNSLink     *string `json:"sns_link,omitempty"`
	Reason      string  `json:"reason" binding:"required"`
}

type RejectManagerRequestRequest struct {
	Reason string `json:"reason" binding:"required"`
}
