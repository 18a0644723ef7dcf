package resumes

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestMemoryRepoCreateGet(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	content := []byte("%PDF-1.4 raw bytes")

	id, err := repo.Create(ctx, "resume.pdf", content)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	content[0] = 'X'

	rec, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Status != StatusUploaded {
		t.Fatalf("expected uploaded, got %s", rec.Status)
	}
	if !bytes.Equal(rec.FileContent, []byte("%PDF-1.4 raw bytes")) {
		t.Fatalf("file content not preserved: %q", rec.FileContent)
	}
	if rec.UserName != nil || rec.JobDescription != nil || rec.HasOutput() || rec.HasCoverLetter() {
		t.Fatalf("expected empty optional fields, got %+v", rec)
	}

	second, _ := repo.Create(ctx, "b.docx", []byte("x"))
	if second <= id {
		t.Fatalf("expected increasing ids, got %d then %d", id, second)
	}
}

func TestMemoryRepoUpdate(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	id, _ := repo.Create(ctx, "resume.pdf", []byte("x"))

	if err := repo.Update(ctx, id, Update{}); err != nil {
		t.Fatalf("empty update should succeed: %v", err)
	}
	if err := repo.Update(ctx, id, Update{}.Status(StatusProcessing).JobDescription("Go developer")); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := repo.Update(ctx, id, Update{}.Status(StatusProcessing)); err != nil {
		t.Fatalf("same status should be allowed: %v", err)
	}
	if err := repo.Update(ctx, id, Update{}.CoverLetterContent([]byte("letter")).UserName("Jane Doe")); err != nil {
		t.Fatalf("Update: %v", err)
	}

	rec, _ := repo.Get(ctx, id)
	if rec.Status != StatusProcessing || *rec.JobDescription != "Go developer" || *rec.UserName != "Jane Doe" {
		t.Fatalf("unexpected record %+v", rec)
	}
	if !rec.HasCoverLetter() || rec.HasOutput() {
		t.Fatalf("expected cover letter only")
	}

	err := repo.Update(ctx, id, Update{}.Status(StatusUploaded))
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if err := repo.Update(ctx, id, Update{}.Status("archived")); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for unknown status, got %v", err)
	}
}

func TestMemoryRepoNotFound(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if _, err := repo.Get(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get: expected ErrNotFound, got %v", err)
	}
	if err := repo.Update(ctx, 42, Update{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update: expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete: expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoDelete(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	id, _ := repo.Create(ctx, "resume.pdf", []byte("x"))

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
