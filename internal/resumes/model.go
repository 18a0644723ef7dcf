package resumes

import "time"

// Status is the processing state of a resume record.
type Status string

const (
	StatusUploaded   Status = "uploaded"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
)

func (s Status) rank() int {
	switch s {
	case StatusUploaded:
		return 0
	case StatusProcessing:
		return 1
	case StatusCompleted:
		return 2
	default:
		return -1
	}
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s.rank() >= 0
}

// Record is one uploaded resume and everything produced from it.
type Record struct {
	ID                 int64
	OriginalFilename   string
	FileContent        []byte
	UserName           *string
	CreatedAt          time.Time
	Status             Status
	JobDescription     *string
	OutputContent      []byte
	CoverLetterContent []byte
}

func (r Record) HasOutput() bool      { return len(r.OutputContent) > 0 }
func (r Record) HasCoverLetter() bool { return len(r.CoverLetterContent) > 0 }
