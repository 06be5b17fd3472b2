package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/spec-scribe/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildJobSpecPrompt creates the prompt for job specification generation.
// referenceContext is appended only when non-empty.
func (pb *PromptBuilder) BuildJobSpecPrompt(req models.JobSpecRequest, referenceContext string) string {
	additionalInfo := req.AdditionalInfo
	if additionalInfo == "" {
		additionalInfo = "N/A"
	}

	prompt := fmt.Sprintf(`Create a professional job specification for a %s position.

Job Description: %s
Experience Level: %s
Additional Information: %s

Format the job specification with clear sections for:
- Overview/Summary
- Responsibilities
- Requirements/Qualifications
- Additional Information

Use a professional tone consistent with corporate standards.`,
		value(req.JobTitle), value(req.JobDescription), value(req.ExperienceLevel), additionalInfo)

	if referenceContext != "" {
		prompt += fmt.Sprintf(`

Reference Template:
%s

Follow the structure and wording style of the reference template where it fits.`, referenceContext)
	}

	return prompt
}

// BuildInterviewQuestionsPrompt creates the prompt for interview question
// generation. Sections appear in a fixed order and only when present.
func (pb *PromptBuilder) BuildInterviewQuestionsPrompt(req models.InterviewQuestionRequest) string {
	var sb strings.Builder
	sb.WriteString("Generate professional interview questions based on the following information:\n\n")

	if req.JobSpec != "" {
		fmt.Fprintf(&sb, "Job Specification:\n%s\n\n", req.JobSpec)
	}
	if req.CVContent != "" {
		fmt.Fprintf(&sb, "Candidate CV:\n%s\n\n", req.CVContent)
	}
	if req.AdditionalContext != "" {
		fmt.Fprintf(&sb, "Additional Context:\n%s\n\n", req.AdditionalContext)
	}

	sb.WriteString("Generate 5-10 specific interview questions that will help assess the candidate's fit for the position.\n")
	sb.WriteString("Return ONLY a JSON array of strings, one question per element.")

	return sb.String()
}

// BuildRetrievalQuery creates the query used to look up reference template chunks.
func (pb *PromptBuilder) BuildRetrievalQuery(req models.JobSpecRequest) string {
	return fmt.Sprintf("Job specification for %s. %s", value(req.JobTitle), value(req.JobDescription))
}

// FormatReferenceContext joins retrieved template chunks into one prompt block.
func FormatReferenceContext(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	var parts []string
	for i, result := range results {
		parts = append(parts, fmt.Sprintf("--- Excerpt %d (Score: %.2f) ---\n%s",
			i+1, result.Score, strings.TrimSpace(result.Text)))
	}

	return strings.Join(parts, "\n\n")
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
