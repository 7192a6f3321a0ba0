package models

import "time"

// Document is one uploaded book: the original file name plus the plain text
// extracted from it. Content is written once at ingest and never updated.
type Document struct {
	ID         int64     `db:"id"`
	Filename   string    `db:"filename"`
	Content    string    `db:"content"`
	UploadedAt time.Time `db:"uploaded_at"`
}
