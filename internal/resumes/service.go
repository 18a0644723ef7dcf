package resumes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resume-tailor/internal/extract"
	"resume-tailor/internal/render"
	"resume-tailor/internal/shared/metrics"
	"resume-tailor/internal/shared/telemetry"
	"resume-tailor/internal/shared/util"
	"resume-tailor/internal/tailor"
)

// TextExtractor turns an uploaded file into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, content []byte, filename string) (string, error)
}

// Tailorer produces structured documents from resume text.
type Tailorer interface {
	TailorResume(ctx context.Context, resumeText, jobDescription string) (tailor.ResumeData, error)
	GenerateCoverLetter(ctx context.Context, resumeText, jobDescription string) (tailor.CoverLetter, error)
}

// Service sequences upload, tailoring and download of resume records.
type Service struct {
	Repo      Repo
	Extractor TextExtractor
	Engine    Tailorer
}

// Outcome is what tailor and cover-letter calls report back.
type Outcome struct {
	Previous Status
	Status   Status
	UserName string
}

// Download is a generated document ready to stream.
type Download struct {
	Filename string
	Content  []byte
}

// Upload validates the extension and stores a new record.
func (s *Service) Upload(ctx context.Context, filename string, content []byte) (Record, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return Record{}, fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}
	if !extract.Supported(filename) {
		return Record{}, fmt.Errorf("%w: only .pdf and .docx files are supported", ErrInvalidInput)
	}
	if len(content) == 0 {
		return Record{}, fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}

	id, err := s.Repo.Create(ctx, filename, content)
	if err != nil {
		return Record{}, err
	}
	metrics.IncUploads()
	telemetry.Info("resume.uploaded", map[string]any{
		"resume_id":  id,
		"filename":   filename,
		"size_bytes": len(content),
	})
	return s.Repo.Get(ctx, id)
}

// Get returns the record with the given id.
func (s *Service) Get(ctx context.Context, id int64) (Record, error) {
	return s.Repo.Get(ctx, id)
}

// Tailor runs the full pipeline for a record. A failure after the
// record is marked processing leaves it in that state. A completed record
// keeps its status while it is tailored again, and keeps its previous
// output if that run fails.
func (s *Service) Tailor(ctx context.Context, id int64, jobDescription string) (Outcome, error) {
	jobDescription = strings.TrimSpace(jobDescription)
	if jobDescription == "" {
		return Outcome{}, fmt.Errorf("%w: job description is required", ErrInvalidInput)
	}

	rec, err := s.Repo.Get(ctx, id)
	if err != nil {
		return Outcome{}, err
	}
	if rec.Status != StatusCompleted {
		if err := s.Repo.Update(ctx, id, Update{}.Status(StatusProcessing).JobDescription(jobDescription)); err != nil {
			return Outcome{}, err
		}
		logTransition(id, rec.Status, StatusProcessing)
	}

	metrics.IncTailorStarted()
	start := time.Now()
	out, err := s.runTailor(ctx, id, rec, jobDescription)
	metrics.ObserveTailorDuration(time.Since(start))
	if err != nil {
		metrics.IncTailorFailed()
		telemetry.Error("resume.tailor_failed", map[string]any{
			"resume_id": id,
			"error":     err,
		})
		return Outcome{}, err
	}
	metrics.IncTailorCompleted()
	if rec.Status != StatusCompleted {
		logTransition(id, StatusProcessing, StatusCompleted)
	}
	out.Previous = rec.Status
	return out, nil
}

func (s *Service) runTailor(ctx context.Context, id int64, rec Record, jobDescription string) (Outcome, error) {
	text, err := s.Extractor.ExtractText(ctx, rec.FileContent, rec.OriginalFilename)
	if err != nil {
		return Outcome{}, err
	}
	data, err := s.Engine.TailorResume(ctx, text, jobDescription)
	if err != nil {
		return Outcome{}, err
	}
	doc, err := render.Resume(data)
	if err != nil {
		return Outcome{}, err
	}

	update := Update{}.Status(StatusCompleted).JobDescription(jobDescription).OutputContent(doc).UserName(data.Name)
	if err := s.Repo.Update(ctx, id, update); err != nil {
		return Outcome{}, err
	}
	return Outcome{Status: StatusCompleted, UserName: data.Name}, nil
}

// CoverLetter generates and stores a cover letter. It never changes status.
func (s *Service) CoverLetter(ctx context.Context, id int64, jobDescription string) (Outcome, error) {
	jobDescription = strings.TrimSpace(jobDescription)
	if jobDescription == "" {
		return Outcome{}, fmt.Errorf("%w: job description is required", ErrInvalidInput)
	}

	rec, err := s.Repo.Get(ctx, id)
	if err != nil {
		return Outcome{}, err
	}

	out, err := s.runCoverLetter(ctx, id, rec, jobDescription)
	if err != nil {
		metrics.IncCoverLetterFailed()
		telemetry.Error("resume.cover_letter_failed", map[string]any{
			"resume_id": id,
			"error":     err,
		})
		return Outcome{}, err
	}
	metrics.IncCoverLetterCompleted()
	return out, nil
}

func (s *Service) runCoverLetter(ctx context.Context, id int64, rec Record, jobDescription string) (Outcome, error) {
	text, err := s.Extractor.ExtractText(ctx, rec.FileContent, rec.OriginalFilename)
	if err != nil {
		return Outcome{}, err
	}
	letter, err := s.Engine.GenerateCoverLetter(ctx, text, jobDescription)
	if err != nil {
		return Outcome{}, err
	}
	doc, err := render.CoverLetter(letter.Content)
	if err != nil {
		return Outcome{}, err
	}

	update := Update{}.CoverLetterContent(doc)
	name := letter.Name
	if name != "" {
		update = update.UserName(name)
	} else if rec.UserName != nil {
		name = *rec.UserName
	}
	if err := s.Repo.Update(ctx, id, update); err != nil {
		return Outcome{}, err
	}
	return Outcome{Previous: rec.Status, Status: rec.Status, UserName: name}, nil
}

// ResumeDocument returns the tailored resume of a completed record.
func (s *Service) ResumeDocument(ctx context.Context, id int64) (Download, error) {
	rec, err := s.Repo.Get(ctx, id)
	if err != nil {
		return Download{}, err
	}
	if rec.Status != StatusCompleted {
		return Download{}, fmt.Errorf("%w: resume %d is %s", ErrNotReady, id, rec.Status)
	}
	if !rec.HasOutput() {
		return Download{}, fmt.Errorf("%w: resume %d has no output", ErrNotFound, id)
	}
	return Download{
		Filename: util.DownloadName(rec.UserName, "resume", id),
		Content:  rec.OutputContent,
	}, nil
}

// CoverLetterDocument returns the stored cover letter, regardless of status.
func (s *Service) CoverLetterDocument(ctx context.Context, id int64) (Download, error) {
	rec, err := s.Repo.Get(ctx, id)
	if err != nil {
		return Download{}, err
	}
	if !rec.HasCoverLetter() {
		return Download{}, fmt.Errorf("%w: resume %d has no cover letter", ErrNotFound, id)
	}
	return Download{
		Filename: util.DownloadName(rec.UserName, "cover_letter", id),
		Content:  rec.CoverLetterContent,
	}, nil
}

func logTransition(id int64, from, to Status) {
	telemetry.Info("resume.status", map[string]any{
		"resume_id":         id,
		"status_transition": string(from) + "->" + string(to),
	})
}
