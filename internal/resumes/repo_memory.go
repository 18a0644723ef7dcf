package resumes

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	data   map[int64]Record
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[int64]Record),
	}
}

// Create stores a new record in the uploaded state.
func (r *MemoryRepo) Create(ctx context.Context, filename string, content []byte) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.data[r.nextID] = Record{
		ID:               r.nextID,
		OriginalFilename: filename,
		FileContent:      cloneBytes(content),
		CreatedAt:        time.Now().UTC(),
		Status:           StatusUploaded,
	}
	return r.nextID, nil
}

// Get returns a copy of the record.
func (r *MemoryRepo) Get(ctx context.Context, id int64) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.data[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return copyRecord(rec), nil
}

// Update applies the set columns of u.
func (r *MemoryRepo) Update(ctx context.Context, id int64, u Update) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.data[id]
	if !ok {
		return ErrNotFound
	}
	if err := u.checkTransition(rec.Status); err != nil {
		return err
	}
	u.apply(&rec)
	r.data[id] = rec
	return nil
}

// Delete removes the record.
func (r *MemoryRepo) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

func copyRecord(rec Record) Record {
	out := rec
	out.FileContent = cloneBytes(rec.FileContent)
	out.OutputContent = cloneBytes(rec.OutputContent)
	out.CoverLetterContent = cloneBytes(rec.CoverLetterContent)
	if rec.UserName != nil {
		v := *rec.UserName
		out.UserName = &v
	}
	if rec.JobDescription != nil {
		v := *rec.JobDescription
		out.JobDescription = &v
	}
	return out
}

var _ Repo = (*MemoryRepo)(nil)
