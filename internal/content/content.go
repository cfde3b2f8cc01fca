// Package content loads walkthrough datasets. Built-in walkthroughs are
// embedded YAML documents; alternative datasets with the same schema can be
// read from disk.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/atomicstack/route-guide/internal/walkthrough"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var builtin embed.FS

// ErrInvalid reports a document that failed validation.
var ErrInvalid = errors.New("invalid walkthrough")

// Walkthrough is a decoded, validated dataset.
type Walkthrough struct {
	Title  string
	Name   string
	Routes []walkthrough.Route
}

// Parse decodes and validates a YAML walkthrough document. Unknown fields are
// rejected so typos in hand-written datasets surface early.
func Parse(data []byte) (*Walkthrough, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode walkthrough: %w", err)
	}
	if errs := Validate(&doc); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return &Walkthrough{
		Title:  doc.Title,
		Name:   doc.Name,
		Routes: Convert(&doc),
	}, nil
}

// LoadFile reads and parses a walkthrough from disk.
func LoadFile(filePath string) (*Walkthrough, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read walkthrough %s: %w", filePath, err)
	}
	w, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return w, nil
}

// Builtin returns the embedded walkthrough for a title id.
func Builtin(title string) (*Walkthrough, error) {
	data, err := builtin.ReadFile(path.Join("data", title+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("no built-in walkthrough for %q: %w", title, err)
	}
	return Parse(data)
}

// HasBuiltin reports whether an embedded walkthrough exists for the title id.
func HasBuiltin(title string) bool {
	_, err := builtin.Open(path.Join("data", title+".yaml"))
	return err == nil
}
