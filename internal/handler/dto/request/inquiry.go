package request

type CreateInquiryRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type AnswerInquiryRequest struct {
	Answer string `json:"answer" binding:"required"`
}
