package assistant

type AIRequest struct {
	RequestType    string `json:"request_type" binding:"required"`
	Context        string `json:"context" binding:"required"`
	AdditionalInfo string `json:"additional_info"`
}

type AIResponse struct {
	RequestType   string `json:"request_type"`
	GeneratedText string `json:"generated_text"`
}
