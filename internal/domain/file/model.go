package file

import "io"

// Upload is a file sent by the chat UI.
type Upload struct {
	SessionID string
	Filename  string
	Body      io.Reader
}

// Receipt identifies an accepted upload.
type Receipt struct {
	ID       string
	MimeType string
	Bytes    int64
}
