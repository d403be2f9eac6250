package http

import (
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/Siomarry/tiny-web-server/app/lib/rio"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type state int

const (
	stateAwaitingRequestLine state = iota
	stateHeadersDrained
	stateClassified
	stateRespondingError
	stateRespondingStatic
	stateRespondingDynamic
	stateClosed
)

var stateNames = map[state]string{
	stateAwaitingRequestLine: "awaiting_request_line",
	stateHeadersDrained:      "headers_drained",
	stateClassified:          "classified",
	stateRespondingError:     "responding_error",
	stateRespondingStatic:    "responding_static",
	stateRespondingDynamic:   "responding_dynamic",
	stateClosed:              "closed",
}

func (s state) String() string {
	if name, exists := stateNames[s]; exists {
		return name
	}
	return "unknown"
}

type TransactionHandler struct {
	config  Config
	spawner Spawner
	stat    func(path string) (FileMetadata, error)
	logger  zerolog.Logger
}

func NewTransactionHandler(config Config, spawner Spawner, logger zerolog.Logger) *TransactionHandler {
	return &TransactionHandler{
		config:  config,
		spawner: spawner,
		stat:    StatFile,
		logger:  logger,
	}
}

type transaction struct {
	state  state
	res    *ResponseWriter
	logger zerolog.Logger
}

func (t *transaction) enter(s state) {
	t.logger.Debug().Str("from", t.state.String()).Str("to", s.String()).Msg("transaction state")
	t.state = s
}

func (t *transaction) fail(status string, cause string, longReason string) error {
	t.enter(stateRespondingError)
	t.logger.Info().Str("status", status).Str("cause", cause).Msg("responding with client error")
	err := t.res.writeStatus(status, cause, longReason)
	t.enter(stateClosed)
	return err
}

// Handle serves one request. conn is left open for the caller to close.
func (h *TransactionHandler) Handle(conn io.ReadWriter, remote string) error {
	logger := h.logger.With().Str("txn", uuid.New().String()).Str("remote", remote).Logger()
	t := &transaction{
		state:  stateAwaitingRequestLine,
		res:    NewResponseWriter(conn, h.config.ServerName),
		logger: logger,
	}

	stream := rio.NewStream(conn)

	// read request line
	req, line, ok, err := ReadRequest(stream)
	if err != nil {
		if errors.Is(err, ErrMalformedRequestLine) {
			return t.fail(Status400BadRequest, strings.TrimRight(line, "\r\n"), "Tiny could not parse the request line")
		}
		return err
	}

	if !ok {
		t.logger.Debug().Msg("connection closed before a request line was sent")
		t.enter(stateClosed)
		return nil
	}

	t.logger = t.logger.With().Str("method", req.Method).Str("uri", req.Target).Logger()
	t.logger.Info().Str("version", req.Version).Msg("handling request")

	if !req.IsGet() {
		return t.fail(Status501NotImplemented, req.Method, "Tiny does not implement this method")
	}

	// read headers
	drained, err := DrainHeaders(stream)
	if err != nil {
		return err
	}
	t.logger.Debug().Int("headers", drained).Msg("drained headers")
	t.enter(stateHeadersDrained)

	if !strings.HasPrefix(req.Target, "/") {
		return t.fail(Status400BadRequest, req.Target, "Tiny only serves targets starting with '/'")
	}

	target := h.config.Classify(req.Target)
	t.logger.Debug().Bool("static", target.IsStatic).Str("path", target.ResolvedPath).Str("args", target.QueryArgs).Msg("classified target")
	t.enter(stateClassified)

	if escapesRoot(req.Target, target.IsStatic) {
		return t.fail(Status403Forbidden, req.Target, "Tiny will not serve paths outside the document root")
	}

	meta, err := h.stat(target.ResolvedPath)
	if err != nil {
		t.logger.Warn().Err(err).Str("path", target.ResolvedPath).Msg("stat failed")
	}

	if err != nil || !meta.Exists {
		return t.fail(Status404NotFound, target.ResolvedPath, "Tiny couldn't find this file")
	}

	if target.IsStatic {
		if !meta.IsRegular || !meta.OwnerReadable {
			return t.fail(Status403Forbidden, target.ResolvedPath, "Tiny couldn't read the file")
		}

		t.enter(stateRespondingStatic)
		err = t.res.WriteStatic(target.ResolvedPath, meta.Size)
		t.enter(stateClosed)
		return err
	}

	if !meta.IsRegular || !meta.OwnerExecutable {
		return t.fail(Status403Forbidden, target.ResolvedPath, "Tiny couldn't run the CGI program")
	}

	t.enter(stateRespondingDynamic)
	err = t.res.WriteDynamic(target.ResolvedPath, target.QueryArgs, h.spawner)
	t.enter(stateClosed)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		t.logger.Warn().Int("exit_code", exitErr.ExitCode()).Msg("dynamic program exited with failure")
		return nil
	}

	return err
}
