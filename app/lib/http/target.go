package http

import (
	"path/filepath"
	"strings"
)

// ClassifyTarget resolves uri under root without any normalisation.
func ClassifyTarget(root string, marker string, index string, uri string) Target {
	if !strings.Contains(uri, marker) {
		path := root + uri
		if strings.HasSuffix(uri, "/") {
			path += strings.TrimPrefix(index, "/")
		}

		return Target{
			IsStatic:     true,
			ResolvedPath: path,
		}
	}

	path, args, _ := strings.Cut(uri, "?")
	return Target{
		IsStatic:     false,
		ResolvedPath: root + path,
		QueryArgs:    args,
	}
}

// escapesRoot reports whether the part of uri that ends up in the resolved
// path could leave the document root.
func escapesRoot(uri string, static bool) bool {
	if !strings.HasPrefix(uri, "/") {
		return true
	}

	path := uri
	if !static {
		path, _, _ = strings.Cut(uri, "?")
	}

	for _, segment := range strings.Split(path, "/") {
		if segment == ".." {
			return true
		}
	}

	return false
}

var contentTypes = map[string]string{
	".html": TextHtmlContentType,
	".htm":  TextHtmlContentType,
	".css":  TextCssContentType,
	".js":   JavascriptContentType,
	".gif":  ImageGifContentType,
	".jpg":  ImageJpegContentType,
	".jpeg": ImageJpegContentType,
	".png":  ImagePngContentType,
}

func FileType(path string) string {
	if t, exists := contentTypes[strings.ToLower(filepath.Ext(path))]; exists {
		return t
	}

	return TextPlainContentType
}
