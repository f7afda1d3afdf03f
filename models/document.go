package models

// Document is a binary file sent to a chat as a single transfer unit.
type Document struct {
	// FileName is the name shown to the recipient, e.g. "user_data.xlsx".
	FileName string

	// ContentType is the MIME type of Content.
	ContentType string

	// Content is the raw file body.
	Content []byte
}
