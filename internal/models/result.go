package models

type UploadResponse struct {
	Message  string          `json:"message"`
	Resume   *Resume         `json:"resume"`
	Feedback string          `json:"feedback"`
	Report   *FeedbackReport `json:"report"`
}

type ExtractResponse struct {
	Text string `json:"text"`
}

type AnalyzeRequest struct {
	ResumeText   string `json:"resumeText" validate:"required,notblank"`
	Requirements string `json:"requirements" validate:"required,notblank"`
}

type ParseFeedbackRequest struct {
	Feedback string `json:"feedback"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
