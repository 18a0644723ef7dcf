package resumes

import (
	"context"
	"fmt"
)

// Repo defines persistence operations for resume records.
type Repo interface {
	Create(ctx context.Context, filename string, content []byte) (int64, error)
	Get(ctx context.Context, id int64) (Record, error)
	Update(ctx context.Context, id int64, u Update) error
	Delete(ctx context.Context, id int64) error
}

// Update is a partial update of a record. Only the columns set through its
// methods are written; the original file content is never updatable.
type Update struct {
	status             *Status
	jobDescription     *string
	userName           *string
	outputContent      []byte
	setOutput          bool
	coverLetterContent []byte
	setCoverLetter     bool
}

func (u Update) Status(s Status) Update {
	u.status = &s
	return u
}

func (u Update) JobDescription(v string) Update {
	u.jobDescription = &v
	return u
}

func (u Update) UserName(v string) Update {
	u.userName = &v
	return u
}

func (u Update) OutputContent(b []byte) Update {
	u.outputContent = cloneBytes(b)
	u.setOutput = true
	return u
}

func (u Update) CoverLetterContent(b []byte) Update {
	u.coverLetterContent = cloneBytes(b)
	u.setCoverLetter = true
	return u
}

// Empty reports whether the update sets no column.
func (u Update) Empty() bool {
	return u.status == nil && u.jobDescription == nil && u.userName == nil && !u.setOutput && !u.setCoverLetter
}

type column struct {
	name  string
	value any
}

// columns lists the set columns in a fixed order.
func (u Update) columns() []column {
	var cols []column
	if u.status != nil {
		cols = append(cols, column{"status", string(*u.status)})
	}
	if u.jobDescription != nil {
		cols = append(cols, column{"job_description", *u.jobDescription})
	}
	if u.userName != nil {
		cols = append(cols, column{"user_name", *u.userName})
	}
	if u.setOutput {
		cols = append(cols, column{"output_content", u.outputContent})
	}
	if u.setCoverLetter {
		cols = append(cols, column{"cover_letter_content", u.coverLetterContent})
	}
	return cols
}

func (u Update) apply(rec *Record) {
	if u.status != nil {
		rec.Status = *u.status
	}
	if u.jobDescription != nil {
		v := *u.jobDescription
		rec.JobDescription = &v
	}
	if u.userName != nil {
		v := *u.userName
		rec.UserName = &v
	}
	if u.setOutput {
		rec.OutputContent = cloneBytes(u.outputContent)
	}
	if u.setCoverLetter {
		rec.CoverLetterContent = cloneBytes(u.coverLetterContent)
	}
}

// checkTransition rejects unknown statuses and backward moves.
func (u Update) checkTransition(current Status) error {
	if u.status == nil {
		return nil
	}
	next := *u.status
	if !next.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}
	if next.rank() < current.rank() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
	}
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
