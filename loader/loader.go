// Package loader reads campus pathway documents from disk.
//
// A document lists nodes and paths in the shape produced by the map tooling:
//
//	{
//	  "nodes": [{"id": "lib", "type": "building", "x": 41.2, "y": 18.0, "name": "Library"}],
//	  "paths": [{"start": "lib", "end": "j3", "distance": 4.5, "walkable": true}]
//	}
//
// JSON and YAML encodings are accepted. Decoding only parses; validation and
// graph construction belong to campus.NewGraph.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/campusnav/campus"
)

// Sentinel errors.
var (
	// ErrDecode indicates the document could not be parsed.
	ErrDecode = errors.New("loader: cannot decode document")

	// ErrNoNodes indicates a syntactically valid document without nodes.
	ErrNoNodes = errors.New("loader: document has no nodes")
)

// Format names a document encoding.
type Format int

const (
	// FormatAuto tries YAML first, then JSON.
	FormatAuto Format = iota
	FormatJSON
	FormatYAML
)

// Document is the raw pathway data for one campus.
type Document struct {
	Nodes []campus.Node `json:"nodes" yaml:"nodes"`
	Paths []campus.Edge `json:"paths" yaml:"paths"`
}

// FormatFromPath picks a Format from the file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := decodeJSON(data, &doc); err != nil {
			return Document{}, fmt.Errorf("%w: json: %v", ErrDecode, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("%w: yaml: %v", ErrDecode, err)
		}
	default:
		// YAML first, then JSON.
		if yerr := yaml.Unmarshal(data, &doc); yerr != nil {
			doc = Document{}
			if jerr := decodeJSON(data, &doc); jerr != nil {
				return Document{}, fmt.Errorf("%w: yaml: %v; json: %v", ErrDecode, yerr, jerr)
			}
		}
	}
	if len(doc.Nodes) == 0 {
		return Document{}, ErrNoNodes
	}

	return doc, nil
}

func decodeJSON(data []byte, doc *Document) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	return dec.Decode(doc)
}

// ReadFile reads and decodes the document at path, choosing the format from
// its extension.
func ReadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("loader: read %s: %w", path, err)
	}
	doc, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}
