package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Siomarry/tiny-web-server/app/lib/rio"
)

var ErrMalformedRequestLine = errors.New("malformed request line")

// ReadRequest reads and parses one request line. ok is false when the
// client closed the connection without sending anything.
func ReadRequest(s *rio.Stream) (req Request, line string, ok bool, err error) {
	line, err = s.ReadLineString(MaxLine)
	if err != nil {
		return Request{}, line, false, fmt.Errorf("failed to read request line: %w", err)
	}

	if line == "" {
		return Request{}, line, false, nil
	}

	req, err = ParseRequestLine(line)
	return req, line, true, err
}

func ParseRequestLine(line string) (Request, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return Request{}, fmt.Errorf("%w: %q", ErrMalformedRequestLine, strings.TrimRight(line, "\r\n"))
	}

	return Request{
		Method:  parts[0],
		Target:  parts[1],
		Version: parts[2],
	}, nil
}

// DrainHeaders treats end of stream as the end of the headers.
func DrainHeaders(s *rio.Stream) (int, error) {
	drained := 0
	buf := make([]byte, MaxLine)
	for {
		n, err := s.ReadLine(buf)
		if err != nil {
			return drained, fmt.Errorf("failed to drain headers: %w", err)
		}

		line := string(buf[:n])
		if n == 0 || line == "\r\n" || line == "\n" {
			return drained, nil
		}

		drained++
	}
}
