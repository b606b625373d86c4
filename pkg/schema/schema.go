// Package schema reads field descriptors and candidate records from files.
//
// Field descriptors are YAML documents with a top-level "fields" list.
// Records use the JSON shape of a record write request:
//
//	{"records": [{"fields": {"Title": "Launch", "Price": 19.99}}]}
package schema

import (
	"errors"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldkit/pkg/field"
)

var (
	ErrFailedToParseFields  = errors.New("failed to parse field descriptors")
	ErrFailedToParseRecords = errors.New("failed to parse records")
	ErrNoFields             = errors.New("no field descriptors found")
	ErrDuplicateField       = errors.New("duplicate field name")
	ErrFailedToOpenFile     = errors.New("failed to open file")
)

// Document is the on-disk layout of a field descriptor file.
type Document struct {
	Fields []field.Descriptor `yaml:"fields"`
}

// Record is one record write: field key to candidate value.
type Record struct {
	Fields map[string]any `json:"fields"`
}

type recordsDocument struct {
	Records []Record `json:"records"`
}

// ParseFields decodes descriptors from YAML. Every descriptor needs a name or
// an ID and a type, and names must be unique.
func ParseFields(r io.Reader) ([]field.Descriptor, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Join(ErrFailedToParseFields, err)
	}
	if len(doc.Fields) == 0 {
		return nil, ErrNoFields
	}

	seen := make(map[string]struct{}, len(doc.Fields))
	for i, f := range doc.Fields {
		if f.Key() == "" {
			return nil, fmt.Errorf("%w: field #%d has neither name nor id", ErrFailedToParseFields, i)
		}
		if f.Type == "" {
			return nil, fmt.Errorf("%w: field %q has no type", ErrFailedToParseFields, f.Key())
		}
		if _, dup := seen[f.Key()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, f.Key())
		}
		seen[f.Key()] = struct{}{}
	}
	return doc.Fields, nil
}

// ParseRecords decodes a record write request. JSON numbers become float64
// and JSON null becomes nil.
func ParseRecords(r io.Reader) ([]Record, error) {
	var doc recordsDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Join(ErrFailedToParseRecords, err)
	}
	return doc.Records, nil
}

// LoadFields reads descriptors from a YAML file.
func LoadFields(path string) ([]field.Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToOpenFile, err)
	}
	defer f.Close()
	return ParseFields(f)
}

// LoadRecords reads records from a JSON file, or from stdin when path is "-".
func LoadRecords(path string) ([]Record, error) {
	if path == "-" {
		return ParseRecords(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToOpenFile, err)
	}
	defer f.Close()
	return ParseRecords(f)
}
