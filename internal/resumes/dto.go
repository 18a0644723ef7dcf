package resumes

import "time"

// UploadResponse is returned by POST /upload.
type UploadResponse struct {
	ID       int64  `json:"id"`
	Filename string `json:"filename"`
}

// OutcomeResponse is returned by the tailor and cover-letter endpoints.
type OutcomeResponse struct {
	Status   Status `json:"status"`
	UserName string `json:"user_name"`
}

// RecordResponse is the outward-facing view of a record. Blobs are reduced to flags.
type RecordResponse struct {
	ID               int64     `json:"id"`
	OriginalFilename string    `json:"original_filename"`
	UserName         *string   `json:"user_name"`
	CreatedAt        time.Time `json:"created_at"`
	Status           Status    `json:"status"`
	HasOutput        bool      `json:"has_output"`
	HasCoverLetter   bool      `json:"has_cover_letter"`
}

func toResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:               rec.ID,
		OriginalFilename: rec.OriginalFilename,
		UserName:         rec.UserName,
		CreatedAt:        rec.CreatedAt,
		Status:           rec.Status,
		HasOutput:        rec.HasOutput(),
		HasCoverLetter:   rec.HasCoverLetter(),
	}
}
