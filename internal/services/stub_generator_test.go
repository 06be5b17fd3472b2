package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubGenerator_JobSpecification(t *testing.T) {
	text, err := NewStubGenerator().Generate(context.Background(), TaskJobSpecification, "anything")

	require.NoError(t, err)
	assert.Contains(t, text, "## Overview")
	assert.Contains(t, text, "## Responsibilities")
	assert.Contains(t, text, "## Requirements")
}

func TestStubGenerator_InterviewQuestionsIsJSONList(t *testing.T) {
	text, err := NewStubGenerator().Generate(context.Background(), TaskInterviewQuestions, "job spec mentioned here")

	require.NoError(t, err)
	var questions []string
	require.NoError(t, json.Unmarshal([]byte(text), &questions))
	assert.Len(t, questions, 5)
}

func TestStubGenerator_IgnoresPromptContent(t *testing.T) {
	stub := NewStubGenerator()

	a, err := stub.Generate(context.Background(), TaskJobSpecification, "interview questions please")
	require.NoError(t, err)
	b, err := stub.Generate(context.Background(), TaskJobSpecification, "job spec please")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
