package rio

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"golang.org/x/sys/unix"
)

// stutterWriter accepts at most limit bytes per call and reports EINTR on
// every other call.
type stutterWriter struct {
	bytes.Buffer
	limit int
	calls int
}

func (w *stutterWriter) Write(p []byte) (int, error) {
	w.calls++
	if w.calls%2 == 1 {
		return 0, unix.EINTR
	}
	if len(p) > w.limit {
		p = p[:w.limit]
	}
	return w.Buffer.Write(p)
}

type brokenWriter struct {
	n   int
	err error
}

func (w brokenWriter) Write(p []byte) (int, error) {
	return w.n, w.err
}

func TestWriteAll(t *testing.T) {
	w := &stutterWriter{limit: 3}
	payload := []byte("HTTP/1.0 200 OK\r\n")

	err := WriteAll(w, payload)

	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(w.Bytes(), payload) {
		t.Errorf("expected %q but got %q", payload, w.Bytes())
	}
}

func TestWriteAllFailures(t *testing.T) {
	tests := []struct {
		name     string
		writer   io.Writer
		expected error
	}{
		{name: "broken pipe", writer: brokenWriter{err: unix.EPIPE}, expected: unix.EPIPE},
		{name: "no progress", writer: brokenWriter{}, expected: io.ErrShortWrite},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := WriteAll(test.writer, []byte("abc"))

			var ioerr *IOError
			if !errors.As(err, &ioerr) {
				t.Fatalf("expected an IOError but got %v", err)
			}
			if !errors.Is(err, test.expected) {
				t.Errorf("expected %v but got %v", test.expected, ioerr.Err)
			}
		})
	}
}

func TestReadAll(t *testing.T) {
	r := &chunkReader{data: []byte("0123456789"), chunk: 3, interrupt: true}

	buf := make([]byte, 12)
	n, err := ReadAll(r, buf)

	if err != nil {
		t.Fatal(err)
	}
	if string(buf[:n]) != "0123456789" {
		t.Errorf("expected all ten digits but got %q", buf[:n])
	}
}
