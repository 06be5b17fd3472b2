package models

// JobSpecRequest fields only have to be present. An empty string is a
// valid value, so the required fields are pointers.
type JobSpecRequest struct {
	TemplateID      *string `json:"template_id" validate:"required"`
	JobTitle        *string `json:"job_title" validate:"required"`
	JobDescription  *string `json:"job_description" validate:"required"`
	ExperienceLevel *string `json:"experience_level" validate:"required"`
	AdditionalInfo  string  `json:"additional_info,omitempty"`
}

type InterviewQuestionRequest struct {
	JobSpec           string `json:"job_spec,omitempty"`
	CVContent         string `json:"cv_content,omitempty"`
	AdditionalContext string `json:"additional_context,omitempty"`
}

type JobSpecExportRequest struct {
	JobTitle         string `json:"job_title"`
	JobSpecification string `json:"job_specification" validate:"required"`
	Format           string `json:"format" validate:"omitempty,oneof=md pdf"`
}

type QuestionsExportRequest struct {
	Questions []string `json:"questions" validate:"required,min=1,dive,required"`
	Format    string   `json:"format" validate:"omitempty,oneof=txt xlsx"`
}
