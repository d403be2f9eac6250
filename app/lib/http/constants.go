package http

var (
	Status200OK             = "200 OK"
	Status400BadRequest     = "400 Bad Request"
	Status403Forbidden      = "403 Forbidden"
	Status404NotFound       = "404 Not Found"
	Status501NotImplemented = "501 Not Implemented"
)

var (
	HeaderServer        = "Server"
	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"
)

var (
	TextHtmlContentType   = "text/html"
	TextPlainContentType  = "text/plain"
	TextCssContentType    = "text/css"
	ImageGifContentType   = "image/gif"
	ImageJpegContentType  = "image/jpeg"
	ImagePngContentType   = "image/png"
	JavascriptContentType = "application/javascript"
)

var (
	Http1Dot0Version = "HTTP/1.0"
)

var QueryStringEnv = "QUERY_STRING"

const (
	DefaultDocRoot       = "."
	DefaultDynamicMarker = "cgi-bin"
	DefaultIndexDocument = "/html/index.html"
	DefaultServerName    = "Tiny Web Server"
	MaxLine              = 8192
)
