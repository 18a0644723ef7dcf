package resumes

import (
	"context"
	"sync"

	"resume-tailor/internal/tailor"
)

type stubExtractor struct {
	text  string
	err   error
	mu    sync.Mutex
	calls int
}

func (s *stubExtractor) ExtractText(ctx context.Context, content []byte, filename string) (string, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

type stubEngine struct {
	resume    tailor.ResumeData
	resumeErr error
	letter    tailor.CoverLetter
	letterErr error

	lastJobDescription string
}

func (s *stubEngine) TailorResume(ctx context.Context, resumeText, jobDescription string) (tailor.ResumeData, error) {
	s.lastJobDescription = jobDescription
	if s.resumeErr != nil {
		return tailor.ResumeData{}, s.resumeErr
	}
	return s.resume, nil
}

func (s *stubEngine) GenerateCoverLetter(ctx context.Context, resumeText, jobDescription string) (tailor.CoverLetter, error) {
	s.lastJobDescription = jobDescription
	if s.letterErr != nil {
		return tailor.CoverLetter{}, s.letterErr
	}
	return s.letter, nil
}

func sampleResume() tailor.ResumeData {
	return tailor.ResumeData{
		Name:                "Jane Doe",
		Email:               "jane@example.com",
		ProfessionalSummary: "Backend engineer focused on Go services.",
		WorkExperience: []tailor.WorkExperience{
			{Title: "Senior Engineer", Company: "Acme", Duration: "2020 - Present", Bullets: []string{"Built billing APIs in Go"}},
		},
		Skills: []string{"Go", "PostgreSQL"},
		Education: []tailor.Education{
			{Degree: "BSc Computer Science", Institution: "State University", Year: "2016"},
		},
	}
}

func newTestService() (*Service, *stubExtractor, *stubEngine) {
	ext := &stubExtractor{text: "Jane Doe\nSenior Engineer at Acme"}
	eng := &stubEngine{
		resume: sampleResume(),
		letter: tailor.CoverLetter{Name: "Jane Doe", Content: "Dear Hiring Manager,\n\nI am excited to apply.\n\nSincerely,\nJane Doe"},
	}
	return &Service{Repo: NewMemoryRepo(), Extractor: ext, Engine: eng}, ext, eng
}
