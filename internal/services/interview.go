package services

import (
	"context"

	"github.com/pkg/errors"

	"alfredoptarigan/spec-scribe/internal/models"
)

const errMissingInterviewInput = "Either job specification or CV content is required"

type InterviewService interface {
	GenerateQuestions(ctx context.Context, req models.InterviewQuestionRequest) ([]string, error)
}

type interviewService struct {
	generator     Generator
	promptBuilder *PromptBuilder
}

func NewInterviewService(generator Generator) InterviewService {
	return &interviewService{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
	}
}

func (s *interviewService) GenerateQuestions(ctx context.Context, req models.InterviewQuestionRequest) ([]string, error) {
	if req.JobSpec == "" && req.CVContent == "" {
		return nil, models.NewValidationError(errMissingInterviewInput)
	}

	prompt := s.promptBuilder.BuildInterviewQuestionsPrompt(req)
	raw, err := generate(ctx, s.generator, TaskInterviewQuestions, prompt)
	if err != nil {
		return nil, err
	}

	questions := ParseQuestions(raw)
	if len(questions) == 0 {
		logger(ctx).WithField("response_length", len(raw)).Error("❌ Generator returned no questions")
		return nil, &models.GenerationError{Err: errors.New("generator returned no questions")}
	}

	return questions, nil
}
