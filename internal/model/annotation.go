package model

import "time"

// Annotation is a labeled rectangle on one page of one document.
// Coordinates are whatever rendering the client used; no bounds or
// units are enforced. Value is the label, AnnotationValue the optional
// extracted content. Annotations are append-only.
type Annotation struct {
	ID              int64     `json:"id"`
	DocumentID      int64     `json:"document_id"`
	Page            int       `json:"page"`
	X               float64   `json:"x"`
	Y               float64   `json:"y"`
	Width           float64   `json:"width"`
	Height          float64   `json:"height"`
	Value           string    `json:"value"`
	AnnotationValue *string   `json:"annotation_value,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	CreatedBy       *string   `json:"created_by,omitempty"`
}
