package http

import (
	"strings"
)

// Request is the parsed request line. Headers are never retained.
type Request struct {
	Method  string
	Target  string
	Version string
}

func (r Request) IsGet() bool {
	return strings.EqualFold(r.Method, "GET")
}

type Target struct {
	IsStatic     bool
	ResolvedPath string
	QueryArgs    string
}

// FileMetadata is the subset of stat(2) the transaction handler consults.
type FileMetadata struct {
	Exists          bool
	IsRegular       bool
	OwnerReadable   bool
	OwnerExecutable bool
	Size            int64
}

type Config struct {
	DocRoot       string
	DynamicMarker string
	IndexDocument string
	ServerName    string
}

func DefaultConfig() Config {
	return Config{
		DocRoot:       DefaultDocRoot,
		DynamicMarker: DefaultDynamicMarker,
		IndexDocument: DefaultIndexDocument,
		ServerName:    DefaultServerName,
	}
}

func (c Config) Classify(uri string) Target {
	return ClassifyTarget(c.DocRoot, c.DynamicMarker, c.IndexDocument, uri)
}
