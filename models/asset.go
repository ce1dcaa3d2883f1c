package models

import (
	"io"
	"os"
)

// Asset describes a local file pending upload. It is consumed once by the
// upload flow and not retained afterwards.
type Asset struct {
	// Name is the file name reported to the backend.
	Name string

	// MimeType is the content type of the payload (e.g. "video/mp4").
	MimeType string

	// Size is the payload length in bytes.
	Size int64

	// Path locates the file on the local filesystem. Used when Reader is nil.
	Path string

	// Reader optionally supplies the payload directly, taking precedence
	// over Path. Useful for in-memory payloads and tests.
	Reader io.Reader
}

// Open returns a reader over the asset payload. The caller closes it.
func (a Asset) Open() (io.ReadCloser, error) {
	if a.Reader != nil {
		return io.NopCloser(a.Reader), nil
	}
	return os.Open(a.Path)
}

// Empty reports whether the asset carries no payload source at all.
func (a Asset) Empty() bool {
	return a.Reader == nil && a.Path == ""
}
