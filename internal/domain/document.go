package domain

import "time"

// Document records metadata about project material. The file blob itself is
// stored elsewhere; only a URL or path reference is kept here.
type Document struct {
	ID           string
	ProjectID    string
	Title        string
	Description  string
	URLOrPath    string
	UploadedByID string
	UploadedAt   time.Time
}
