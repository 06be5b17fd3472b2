package models

type MessageResponse struct {
	Message string `json:"message"`
}

type JobSpecResponse struct {
	JobSpecification string `json:"job_specification"`
}

type InterviewQuestionsResponse struct {
	Questions []string `json:"questions"`
}

type CVUploadResponse struct {
	CVContent string `json:"cv_content"`
}

type TemplateListResponse struct {
	Templates []Template `json:"templates"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
