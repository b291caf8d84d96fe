// Package uploads validates mock image uploads. Uploaded bytes are inspected
// and then discarded; nothing is stored.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FormField is the multipart field carrying the uploaded file.
const FormField = "file"

// sniffLen is the prefix length http.DetectContentType considers.
const sniffLen = 512

// Upload describes an accepted upload.
type Upload struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	ReceivedAt  time.Time `json:"received_at"`
}

// Inspect reads r to the end and accepts it when its sniffed content type is
// an image no larger than maxBytes. A non-positive maxBytes disables the size
// check.
func Inspect(r io.Reader, filename string, maxBytes int64) (*Upload, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	if n == 0 {
		return nil, ErrEmptyFile
	}

	contentType := http.DetectContentType(head)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	rest := io.Reader(r)
	if maxBytes > 0 {
		rest = io.LimitReader(r, maxBytes-int64(n)+1)
	}
	tail, err := io.Copy(io.Discard, rest)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	size := int64(n) + tail
	if maxBytes > 0 && size > maxBytes {
		return nil, fmt.Errorf("%w: limit %d bytes", ErrFileTooLarge, maxBytes)
	}

	return &Upload{
		ID:          uuid.New(),
		Filename:    filename,
		ContentType: contentType,
		Size:        size,
		ReceivedAt:  time.Now().UTC(),
	}, nil
}

// FromRequest extracts and inspects the FormField file of a multipart request.
// The request body is capped slightly above maxBytes to leave room for the
// multipart framing.
func FromRequest(w http.ResponseWriter, r *http.Request, maxBytes int64) (*Upload, error) {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+64<<10)
	}

	file, header, err := r.FormFile(FormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: limit %d bytes", ErrFileTooLarge, maxBytes)
		}
		return nil, fmt.Errorf("%w: %w", ErrMissingFile, err)
	}
	defer file.Close()

	return Inspect(file, header.Filename, maxBytes)
}
