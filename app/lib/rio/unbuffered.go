package rio

import (
	"errors"
	"io"
)

// WriteAll writes every byte of p to w. Interrupted writes are retried; any
// other failure is returned as an *IOError.
func WriteAll(w io.Writer, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(p)
		if n > 0 {
			p = p[n:]
		}

		if err != nil {
			if interrupted(err) {
				continue
			}
			return &IOError{Op: "write", Err: err}
		}

		if n <= 0 {
			return &IOError{Op: "write", Err: io.ErrShortWrite}
		}
	}

	return nil
}

// WriteString is WriteAll for string payloads.
func WriteString(w io.Writer, s string) error {
	return WriteAll(w, []byte(s))
}

// ReadAll reads directly from r until p is full or r is exhausted.
func ReadAll(r io.Reader, p []byte) (int, error) {
	n := 0
	for n < len(p) {
		m, err := r.Read(p[n:])
		n += m

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if interrupted(err) {
				continue
			}
			return n, &IOError{Op: "read", Err: err}
		}

		if m == 0 {
			break
		}
	}

	return n, nil
}
