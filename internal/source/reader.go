// Package source provides the reader capability the resolver uses to pull
// in included documents: raw file access plus format-specific parsing into
// the agnostic value model. The concrete OS-backed implementation dispatches
// on file extension; the interface exists so tests and embedding callers can
// substitute in-memory sources.
package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"github.com/vk/confmerge/internal/value"
)

// Reader is the capability for loading configuration documents. The
// resolver treats both methods as blocking and never issues concurrent
// calls within one resolution.
type Reader interface {
	// ReadFile returns the raw content of the document at path.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// Parse translates raw document content into the value model. The path
	// is the document's own path, available for format dispatch and error
	// context.
	Parse(ctx context.Context, path string, raw []byte) (value.Value, error)
}

// OSReader is the production Reader, backed by the local file system.
type OSReader struct{}

// NewOSReader returns a Reader backed by the local file system.
func NewOSReader() *OSReader { return &OSReader{} }

// ReadFile implements Reader.
func (r *OSReader) ReadFile(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Parse implements Reader, dispatching on the file extension. JSON and
// JSONC pass through a comment/trailing-comma strip first, so commented
// config files parse everywhere. Unknown extensions are treated as JSON.
func (r *OSReader) Parse(_ context.Context, path string, raw []byte) (value.Value, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		v, err := value.DecodeYAML(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		return v, nil
	case ".hcl":
		v, err := parseHCL(path, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid HCL: %w", err)
		}
		return v, nil
	default:
		v, err := value.DecodeJSON(jsonc.ToJSON(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return v, nil
	}
}

// Extensions lists the file extensions the OS reader can parse, used for
// config-file discovery in directory mode.
func Extensions() []string {
	return []string{".json", ".jsonc", ".yaml", ".yml", ".hcl"}
}
