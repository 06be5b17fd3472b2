package services

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

const stubJobSpecification = `# Sample Job Specification

## Overview
This is an AI-generated job specification based on your requirements.

## Responsibilities
- Lead development of complex systems
- Collaborate with cross-functional teams
- Make technical decisions

## Requirements
- Relevant experience
- Strong technical background
- Excellent communication skills`

var stubInterviewQuestions = []string{
	"Tell me about your experience with the technologies mentioned in your resume.",
	"How would you handle a difficult stakeholder?",
	"Describe a challenging project you worked on and how you overcame obstacles.",
	"What metrics would you use to measure success in this role?",
	"How do you stay updated with industry trends?",
}

// StubGenerator returns canned output and never calls a model.
type StubGenerator struct{}

func NewStubGenerator() *StubGenerator {
	return &StubGenerator{}
}

func (s *StubGenerator) Generate(_ context.Context, task Task, _ string) (string, error) {
	switch task {
	case TaskJobSpecification:
		return stubJobSpecification, nil
	case TaskInterviewQuestions:
		raw, err := json.Marshal(stubInterviewQuestions)
		if err != nil {
			return "", errors.Wrap(err, "failed to encode stub questions")
		}
		return string(raw), nil
	default:
		return "Generated content based on your request.", nil
	}
}
