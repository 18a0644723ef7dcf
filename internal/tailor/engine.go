package tailor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"resume-tailor/internal/llm"
)

// ErrTailoring reports provider output that is not a usable document.
var ErrTailoring = errors.New("tailoring failed")

// Engine turns resume text and a job description into structured documents.
type Engine struct {
	provider llm.Provider
}

// NewEngine builds an Engine on the given provider.
func NewEngine(provider llm.Provider) *Engine {
	return &Engine{provider: provider}
}

// TailorResume asks the provider for a resume tailored to jobDescription.
func (e *Engine) TailorResume(ctx context.Context, resumeText, jobDescription string) (ResumeData, error) {
	raw, err := e.complete(ctx, resumeSystemPrompt, resumeUserTemplate, resumeText, jobDescription)
	if err != nil {
		return ResumeData{}, err
	}

	var data ResumeData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return ResumeData{}, fmt.Errorf("%w: decode resume: %v", ErrTailoring, err)
	}
	data.Name = strings.TrimSpace(data.Name)
	if data.Name == "" {
		return ResumeData{}, fmt.Errorf("%w: resume has no name", ErrTailoring)
	}
	return data, nil
}

// GenerateCoverLetter asks the provider for a cover letter for jobDescription.
func (e *Engine) GenerateCoverLetter(ctx context.Context, resumeText, jobDescription string) (CoverLetter, error) {
	raw, err := e.complete(ctx, coverLetterSystemPrompt, coverLetterUserTemplate, resumeText, jobDescription)
	if err != nil {
		return CoverLetter{}, err
	}

	var letter CoverLetter
	if err := json.Unmarshal([]byte(raw), &letter); err != nil {
		return CoverLetter{}, fmt.Errorf("%w: decode cover letter: %v", ErrTailoring, err)
	}
	letter.Name = strings.TrimSpace(letter.Name)
	if strings.TrimSpace(letter.Content) == "" {
		return CoverLetter{}, fmt.Errorf("%w: cover letter has no content", ErrTailoring)
	}
	return letter, nil
}

func (e *Engine) complete(ctx context.Context, system, userTmpl, resumeText, jobDescription string) (string, error) {
	if e.provider == nil {
		return "", fmt.Errorf("%w: no provider configured", llm.ErrProvider)
	}
	raw, err := e.provider.Complete(ctx, llm.Request{
		System: system,
		User:   fillTemplate(userTmpl, resumeText, jobDescription),
		JSON:   true,
	})
	if err != nil {
		return "", llm.ProviderError("completion", err)
	}
	payload, err := extractJSONObject(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTailoring, err)
	}
	return payload, nil
}

// extractJSONObject tolerates prose or code fences around a single object.
func extractJSONObject(raw string) (string, error) {
	payload := strings.TrimSpace(raw)
	if payload == "" {
		return "", errors.New("empty llm response")
	}
	if json.Valid([]byte(payload)) {
		return payload, nil
	}

	start := strings.Index(payload, "{")
	end := strings.LastIndex(payload, "}")
	if start == -1 || end == -1 || end <= start {
		return "", errors.New("no json object found")
	}

	candidate := payload[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return "", errors.New("invalid json object")
	}
	return candidate, nil
}
