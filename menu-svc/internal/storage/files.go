package storage

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"restaurant-manager/menu-svc/internal/domain"
)

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	return data, nil
}

// writeFile creates path and hands a buffered writer to encode. The file is
// closed on every path and a failed close is reported like a failed write.
func writeFile(path string, encode func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %w", domain.ErrIO, closeErr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := encode(w); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrIO, path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrIO, path, err)
	}
	return nil
}

func formatError(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrFileFormat, path, err)
}
