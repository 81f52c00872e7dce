package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/janhq/chat-demo-api/internal/infrastructure/metrics"
)

// ErrTooLarge is returned when an upload exceeds the configured limit.
var ErrTooLarge = errors.New("upload exceeds size limit")

// sniffLen matches mimetype's default read limit.
const sniffLen = 3072

// Service accepts uploads without storing them.
type Service struct {
	maxBytes int64
	newID    func() string
	log      zerolog.Logger
}

// NewService wires the file service.
func NewService(maxBytes int64, log zerolog.Logger) *Service {
	return &Service{
		maxBytes: maxBytes,
		newID:    func() string { return uuid.New().String() },
		log:      log.With().Str("component", "file-service").Logger(),
	}
}

// MaxBytes is the largest accepted upload.
func (s *Service) MaxBytes() int64 {
	return s.maxBytes
}

// Accept reads the upload to completion, detects its content type and returns
// a new identifier. The content is discarded.
func (s *Service) Accept(ctx context.Context, upload Upload) (Receipt, error) {
	reader := bufio.NewReaderSize(io.LimitReader(upload.Body, s.maxBytes+1), sniffLen)
	head, err := reader.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		metrics.RecordUpload("unknown", "error", 0)
		return Receipt{}, fmt.Errorf("read upload: %w", err)
	}
	mime := mimetype.Detect(head).String()

	n, err := io.Copy(io.Discard, reader)
	if err != nil {
		metrics.RecordUpload(mime, "error", n)
		return Receipt{}, fmt.Errorf("read upload: %w", err)
	}
	if n > s.maxBytes {
		metrics.RecordUpload(mime, "rejected", 0)
		return Receipt{}, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, s.maxBytes)
	}

	receipt := Receipt{ID: s.newID(), MimeType: mime, Bytes: n}
	metrics.RecordUpload(mime, "success", n)
	s.log.Info().
		Str("session", upload.SessionID).
		Str("filename", upload.Filename).
		Str("file_id", receipt.ID).
		Str("mime", receipt.MimeType).
		Int64("bytes", receipt.Bytes).
		Msg("upload accepted")
	return receipt, nil
}

// Delete acknowledges a delete request. Nothing is stored, so there is
// nothing to remove.
func (s *Service) Delete(ctx context.Context, sessionID string) {
	metrics.RecordFileDelete()
	s.log.Debug().Str("session", sessionID).Msg("file delete acknowledged")
}
