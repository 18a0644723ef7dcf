package resumes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"resume-tailor/internal/shared/storage/db"
	"resume-tailor/internal/shared/telemetry"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new record in the uploaded state and returns its id.
func (r *PGRepo) Create(ctx context.Context, filename string, content []byte) (int64, error) {
	const query = `
INSERT INTO resume (original_filename, file_content, status)
VALUES ($1, $2, $3)
RETURNING id`

	return withTx(ctx, r.DB, "create", 0, func(tx *sql.Tx) (int64, error) {
		var id int64
		if err := tx.QueryRowContext(ctx, query, filename, content, string(StatusUploaded)).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	})
}

// Get returns the record with the given id.
func (r *PGRepo) Get(ctx context.Context, id int64) (Record, error) {
	const query = `
SELECT id, original_filename, file_content, user_name, created_at, status, job_description, output_content, cover_letter_content
FROM resume
WHERE id = $1`

	var (
		rec            Record
		status         string
		userName       sql.NullString
		jobDescription sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&rec.OriginalFilename,
		&rec.FileContent,
		&userName,
		&rec.CreatedAt,
		&status,
		&jobDescription,
		&rec.OutputContent,
		&rec.CoverLetterContent,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("%w: get resume %d: %v", ErrStorage, id, err)
	}
	rec.Status = Status(status)
	if userName.Valid {
		rec.UserName = &userName.String
	}
	if jobDescription.Valid {
		rec.JobDescription = &jobDescription.String
	}
	return rec, nil
}

// Update writes the set columns of u after checking the status transition.
func (r *PGRepo) Update(ctx context.Context, id int64, u Update) error {
	_, err := withTx(ctx, r.DB, "update", id, func(tx *sql.Tx) (struct{}, error) {
		var current string
		err := tx.QueryRowContext(ctx, `SELECT status FROM resume WHERE id = $1 FOR UPDATE`, id).Scan(&current)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return struct{}{}, ErrNotFound
			}
			return struct{}{}, err
		}
		if err := u.checkTransition(Status(current)); err != nil {
			return struct{}{}, err
		}

		query, args := buildUpdate(id, u)
		if query == "" {
			return struct{}{}, nil
		}
		_, err = tx.ExecContext(ctx, query, args...)
		return struct{}{}, err
	})
	return err
}

// Delete removes the record with the given id.
func (r *PGRepo) Delete(ctx context.Context, id int64) error {
	_, err := withTx(ctx, r.DB, "delete", id, func(tx *sql.Tx) (struct{}, error) {
		res, err := tx.ExecContext(ctx, `DELETE FROM resume WHERE id = $1`, id)
		if err != nil {
			return struct{}{}, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return struct{}{}, err
		}
		if n == 0 {
			return struct{}{}, ErrNotFound
		}
		return struct{}{}, nil
	})
	return err
}

// buildUpdate renders an UPDATE for the set columns, or "" when none are set.
func buildUpdate(id int64, u Update) (string, []any) {
	cols := u.columns()
	if len(cols) == 0 {
		return "", nil
	}
	sets := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		sets = append(sets, fmt.Sprintf("%s = $%d", col.name, i+1))
		args = append(args, col.value)
	}
	args = append(args, id)
	return fmt.Sprintf("UPDATE resume SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args)), args
}

// withTx runs fn in a transaction. Domain errors pass through; database
// failures are logged and wrapped with ErrStorage.
func withTx[T any](ctx context.Context, database *sql.DB, op string, id int64, fn func(tx *sql.Tx) (T, error)) (T, error) {
	out, err := db.WithTx(ctx, database, fn)
	if err == nil {
		return out, nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidTransition) {
		return out, err
	}
	telemetry.Error("resume.tx_failed", map[string]any{
		"op":        op,
		"resume_id": id,
		"error":     err,
	})
	return out, fmt.Errorf("%w: %s resume: %v", ErrStorage, op, err)
}

var _ Repo = (*PGRepo)(nil)
