package models

import "time"

// Document is the metadata of a stored file.
type Document struct {
	ID          int64     `json:"id"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	Checksum    string    `json:"checksum"`
	StorageKey  string    `json:"-"`
	UploadedBy  int64     `json:"uploadedBy"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// Upload is a file received from a client, not yet stored.
type Upload struct {
	FileName    string
	ContentType string
	Content     []byte
}

// IsEmpty reports whether the upload carries no file.
func (u *Upload) IsEmpty() bool {
	return u == nil || len(u.Content) == 0
}
