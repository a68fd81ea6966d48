package model

import "time"

// Document represents one uploaded PDF and its metadata.
// This is a pure domain model with no database-specific dependencies or tags.
// FilePath is the upsert key: re-uploading the same filename refreshes
// the existing row instead of creating a new one.
type Document struct {
	ID             int64         `json:"id"`
	FilePath       string        `json:"file_path"`
	UploadedAt     time.Time     `json:"uploaded_at"`
	DocumentTypeID *int64        `json:"document_type_id,omitempty"`
	CreatedBy      *string       `json:"created_by,omitempty"`
	DocumentType   *DocumentType `json:"document_type,omitempty"`
}

// DocumentAnnotationCount is one row of the documents-with-counts
// aggregation. Documents without annotations appear with a count of 0.
type DocumentAnnotationCount struct {
	ID              int64     `json:"id"`
	FilePath        string    `json:"file_path"`
	UploadedAt      time.Time `json:"uploaded_at"`
	AnnotationCount int       `json:"annotation_count"`
}
