package http

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Siomarry/tiny-web-server/app/lib/rio"
	"golang.org/x/sys/unix"
)

type ResponseWriter struct {
	conn   io.Writer
	server string
}

func NewResponseWriter(conn io.Writer, server string) *ResponseWriter {
	return &ResponseWriter{
		conn:   conn,
		server: server,
	}
}

// WriteClientError embeds its arguments in the page without escaping.
func (r *ResponseWriter) WriteClientError(cause string, code string, shortReason string, longReason string) error {
	var body strings.Builder
	body.WriteString("<html><title>Tiny Error</title>")
	body.WriteString("<body bgcolor=\"ffffff\">\r\n")
	fmt.Fprintf(&body, "%s: %s\r\n", code, shortReason)
	fmt.Fprintf(&body, "<p>%s: %s\r\n", longReason, cause)
	fmt.Fprintf(&body, "<hr><em>The %s</em>\r\n", r.server)

	var builder strings.Builder
	writeStatusLine(&builder, code+" "+shortReason)
	writeHeader(&builder, HeaderServer, r.server)
	writeHeader(&builder, HeaderContentType, TextHtmlContentType)
	writeHeader(&builder, HeaderContentLength, strconv.Itoa(body.Len()))
	builder.WriteString("\r\n")
	builder.WriteString(body.String())

	return rio.WriteString(r.conn, builder.String())
}

func (r *ResponseWriter) writeStatus(status string, cause string, longReason string) error {
	code, reason, _ := strings.Cut(status, " ")
	return r.WriteClientError(cause, code, reason, longReason)
}

func (r *ResponseWriter) WriteStatic(path string, size int64) error {
	var builder strings.Builder
	writeStatusLine(&builder, Status200OK)
	writeHeader(&builder, HeaderServer, r.server)
	writeHeader(&builder, HeaderContentLength, strconv.FormatInt(size, 10))
	writeHeader(&builder, HeaderContentType, FileType(path))
	builder.WriteString("\r\n")

	if err := rio.WriteString(r.conn, builder.String()); err != nil {
		return err
	}

	if size == 0 {
		return nil
	}

	data, err := mapFile(path, size)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	defer unix.Munmap(data)

	return rio.WriteAll(r.conn, data)
}

// mapFile maps up to size bytes of path read-only. The file may have shrunk
// since it was stat'ed, in which case only what remains is mapped.
func mapFile(path string, size int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	fd := int(f.Fd())

	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if st.Size < size {
		size = st.Size
	}
	if size == 0 {
		return nil, nil
	}

	data, err := unix.Mmap(fd, 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("failed to map %s: %w", path, err)
	}

	return data, nil
}

func (r *ResponseWriter) WriteDynamic(path string, queryArgs string, spawner Spawner) error {
	var builder strings.Builder
	writeStatusLine(&builder, Status200OK)
	writeHeader(&builder, HeaderServer, r.server)

	if err := rio.WriteString(r.conn, builder.String()); err != nil {
		return err
	}

	return spawner.Spawn(path, queryArgs, r.conn)
}

func writeStatusLine(builder *strings.Builder, status string) {
	builder.WriteString(Http1Dot0Version)
	builder.WriteString(" ")
	builder.WriteString(status)
	builder.WriteString("\r\n")
}

func writeHeader(builder *strings.Builder, key string, val string) {
	builder.WriteString(key)
	builder.WriteString(": ")
	builder.WriteString(val)
	builder.WriteString("\r\n")
}
