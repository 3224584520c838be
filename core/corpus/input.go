package corpus

import (
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/hebrewutils/core/errors"
)

// readCloser pairs a decompressing reader with the file under it.
type readCloser struct {
	io.Reader
	file *os.File
}

func (r *readCloser) Close() error {
	return r.file.Close()
}

// Open opens path for reading. Files ending in ".xz" are decompressed on
// the fly.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	if !strings.HasSuffix(path, ".xz") {
		return f, nil
	}

	xzr, err := xz.NewReader(f)
	if err != nil {
		f.Close()
		return nil, errors.NewIO("decompress", path, err)
	}
	return &readCloser{Reader: xzr, file: f}, nil
}

// baseName strips a trailing ".xz" so format detection sees the inner
// extension.
func baseName(path string) string {
	return strings.TrimSuffix(path, ".xz")
}
