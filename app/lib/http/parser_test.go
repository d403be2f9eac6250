package http

import (
	"errors"
	"strings"
	"testing"

	"github.com/Siomarry/tiny-web-server/app/lib/rio"
)

func TestParseRequestLine(t *testing.T) {
	// arrange
	tests := []struct {
		line     string
		expected Request
		err      error
	}{
		{line: "GET / HTTP/1.0\r\n", expected: Request{Method: "GET", Target: "/", Version: "HTTP/1.0"}},
		{line: "get /a.html HTTP/1.1\n", expected: Request{Method: "get", Target: "/a.html", Version: "HTTP/1.1"}},
		{line: "POST  /cgi-bin/x?y   whatever\r\n", expected: Request{Method: "POST", Target: "/cgi-bin/x?y", Version: "whatever"}},
		{line: "GET /\r\n", err: ErrMalformedRequestLine},
		{line: "GET / HTTP/1.0 extra\r\n", err: ErrMalformedRequestLine},
		{line: "\r\n", err: ErrMalformedRequestLine},
	}

	for _, test := range tests {
		// act
		got, err := ParseRequestLine(test.line)

		// assert
		if test.err != nil {
			if !errors.Is(err, test.err) {
				t.Errorf("%q: expected %v but got %v", test.line, test.err, err)
			}
			continue
		}

		if err != nil {
			t.Errorf("%q: %v", test.line, err)
			continue
		}

		if got != test.expected {
			t.Errorf("%q: expected %+v but got %+v", test.line, test.expected, got)
		}
	}
}

func TestIsGet(t *testing.T) {
	for method, expected := range map[string]bool{"GET": true, "get": true, "GeT": true, "POST": false, "HEAD": false} {
		if got := (Request{Method: method}).IsGet(); got != expected {
			t.Errorf("%s: expected %v but got %v", method, expected, got)
		}
	}
}

func TestReadRequestEmptyStream(t *testing.T) {
	s := rio.NewStream(strings.NewReader(""))

	_, _, ok, err := ReadRequest(s)

	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected no request from an empty stream")
	}
}

func TestDrainHeaders(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		drained  int
		leftover string
	}{
		{name: "no headers", input: "\r\nbody", drained: 0, leftover: "body"},
		{name: "two headers", input: "Host: x\r\nUser-Agent: y\r\n\r\nbody", drained: 2, leftover: "body"},
		{name: "bare newline terminator", input: "Host: x\n\nbody", drained: 1, leftover: "body"},
		{name: "eof before blank line", input: "Host: x\r\nAccept: */*\r\n", drained: 2, leftover: ""},
		{name: "eof immediately", input: "", drained: 0, leftover: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := rio.NewStream(strings.NewReader(test.input))

			drained, err := DrainHeaders(s)

			if err != nil {
				t.Fatal(err)
			}
			if drained != test.drained {
				t.Errorf("expected %d headers but got %d", test.drained, drained)
			}

			rest := make([]byte, 64)
			n, _ := s.ReadFull(rest)
			if string(rest[:n]) != test.leftover {
				t.Errorf("expected %q left in the stream but got %q", test.leftover, rest[:n])
			}
		})
	}
}
