package openapi

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// LoaderOptions configures document loading.
type LoaderOptions struct {
	// FileSystem resolves paths given to LoadFile; the operating system is
	// used when nil.
	FileSystem fs.FS
	// Validate runs the kin-openapi validator after loading.
	Validate bool
}

// LoaderOption mutates LoaderOptions.
type LoaderOption func(*LoaderOptions)

// WithFileSystem reads documents from files instead of the operating system.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithValidation validates documents after loading.
func WithValidation() LoaderOption {
	return func(opts *LoaderOptions) {
		opts.Validate = true
	}
}

// Load parses a JSON or YAML OpenAPI 3 document.
func Load(ctx context.Context, data []byte, options ...LoaderOption) (*openapi3.T, error) {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if cfg.Validate {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}
	return doc, nil
}

// LoadFile reads and parses the document at path.
func LoadFile(ctx context.Context, path string, options ...LoaderOption) (*openapi3.T, error) {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	var (
		data []byte
		err  error
	)
	if cfg.FileSystem != nil {
		data, err = fs.ReadFile(cfg.FileSystem, path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("openapi: read %s: %w", path, err)
	}
	return Load(ctx, data, options...)
}

var preferredMediaTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

// RequestSchema returns the request body schema of the operation with the
// given ID. mediaType selects a content entry; when empty the JSON and form
// media types are tried before any other.
func RequestSchema(doc *openapi3.T, operationID, mediaType string) (*openapi3.Schema, error) {
	op := findOperation(doc, operationID)
	if op == nil {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoRequestBody, operationID)
	}
	content := op.RequestBody.Value.Content

	candidates := preferredMediaTypes
	if mediaType != "" {
		candidates = []string{mediaType}
	}
	for _, name := range candidates {
		if mt, ok := content[name]; ok && mt != nil && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value, nil
		}
	}
	if mediaType == "" {
		names := make([]string, 0, len(content))
		for name := range content {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if mt := content[name]; mt != nil && mt.Schema != nil && mt.Schema.Value != nil {
				return mt.Schema.Value, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoRequestBody, operationID)
}

// OperationIDs lists every operation ID in the document, sorted.
func OperationIDs(doc *openapi3.T) []string {
	var ids []string
	eachOperation(doc, func(op *openapi3.Operation) bool {
		if id := strings.TrimSpace(op.OperationID); id != "" {
			ids = append(ids, id)
		}
		return true
	})
	sort.Strings(ids)
	return ids
}

func findOperation(doc *openapi3.T, operationID string) *openapi3.Operation {
	var found *openapi3.Operation
	eachOperation(doc, func(op *openapi3.Operation) bool {
		if op.OperationID == operationID {
			found = op
			return false
		}
		return true
	})
	return found
}

func eachOperation(doc *openapi3.T, fn func(*openapi3.Operation) bool) {
	if doc == nil || doc.Paths == nil {
		return
	}
	paths := doc.Paths.Map()
	keys := make([]string, 0, len(paths))
	for path := range paths {
		keys = append(keys, path)
	}
	sort.Strings(keys)

	for _, path := range keys {
		item := paths[path]
		if item == nil {
			continue
		}
		for _, op := range []*openapi3.Operation{
			item.Get, item.Put, item.Post, item.Delete,
			item.Patch, item.Head, item.Options, item.Trace,
		} {
			if op == nil {
				continue
			}
			if !fn(op) {
				return
			}
		}
	}
}
