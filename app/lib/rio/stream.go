package rio

import (
	"errors"
	"io"
)

// BufferSize is the capacity of a Stream's internal buffer.
const BufferSize = 8192

// Stream is owned by a single connection and must not be shared.
type Stream struct {
	src    io.Reader
	buf    [BufferSize]byte
	unread int // bytes left in buf
	cursor int // next unread byte in buf
	err    error
}

func NewStream(src io.Reader) *Stream {
	return &Stream{src: src}
}

// readOne refills the buffer when it is empty. ok is false at end of stream.
// A read error that arrives with data is held until that data is consumed.
func (s *Stream) readOne() (c byte, ok bool, err error) {
	for s.unread == 0 {
		if s.err != nil {
			held := s.err
			s.err = nil
			return 0, false, &IOError{Op: "read", Err: held}
		}

		n, err := s.src.Read(s.buf[:])
		if n > 0 {
			s.unread = n
			s.cursor = 0
			if err != nil && !errors.Is(err, io.EOF) && !interrupted(err) {
				s.err = err
			}
			break
		}

		if err == nil || errors.Is(err, io.EOF) {
			return 0, false, nil
		}

		if interrupted(err) {
			continue
		}

		return 0, false, &IOError{Op: "read", Err: err}
	}

	c = s.buf[s.cursor]
	s.cursor++
	s.unread--
	return c, true, nil
}

// ReadLine copies at most len(buf)-1 bytes, stopping after '\n'. It returns
// 0 only when the stream was already exhausted, so buf must hold at least
// two bytes.
func (s *Stream) ReadLine(buf []byte) (int, error) {
	if len(buf) < 2 {
		return 0, io.ErrShortBuffer
	}

	n := 0
	for n < len(buf)-1 {
		c, ok, err := s.readOne()
		if err != nil {
			return n, err
		}
		if !ok {
			break
		}

		buf[n] = c
		n++
		if c == '\n' {
			break
		}
	}

	return n, nil
}

func (s *Stream) ReadLineString(max int) (string, error) {
	buf := make([]byte, max)
	n, err := s.ReadLine(buf)
	return string(buf[:n]), err
}

// ReadFull returns a short count and nil error if the stream ends early.
func (s *Stream) ReadFull(buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		if s.unread == 0 {
			c, ok, err := s.readOne()
			if err != nil {
				return n, err
			}
			if !ok {
				break
			}

			buf[n] = c
			n++
			continue
		}

		m := copy(buf[n:], s.buf[s.cursor:s.cursor+s.unread])
		s.cursor += m
		s.unread -= m
		n += m
	}

	return n, nil
}
