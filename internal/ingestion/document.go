// Package ingestion loads profiles, templates and free text from files.
package ingestion

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-drafter/internal/schemas"
	"github.com/jonathan/resume-drafter/internal/types"
)

// Format is the encoding of an input file
type Format string

// Supported formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// FormatFromPath picks a format from the file extension. Unknown extensions are JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".txt", ".md":
		return FormatText
	default:
		return FormatJSON
	}
}

// LoadProfile loads a profile from a JSON or YAML file
func LoadProfile(path string) (*types.Profile, *Metadata, error) {
	doc, meta, err := readDocument(path)
	if err != nil {
		return nil, nil, err
	}

	var profile types.Profile
	if err := json.Unmarshal(doc, &profile); err != nil {
		return nil, nil, &LoadError{Path: path, Message: "failed to decode profile", Cause: err}
	}
	return &profile, meta, nil
}

// LoadTemplate loads a template from a JSON or YAML file and validates it
// against the template schema
func LoadTemplate(path string) (*types.Template, *Metadata, error) {
	doc, meta, err := readDocument(path)
	if err != nil {
		return nil, nil, err
	}

	if err := schemas.ValidateTemplateJSON(doc); err != nil {
		return nil, nil, &LoadError{Path: path, Message: "template does not match schema", Cause: err}
	}

	var tmpl types.Template
	if err := json.Unmarshal(doc, &tmpl); err != nil {
		return nil, nil, &LoadError{Path: path, Message: "failed to decode template", Cause: err}
	}
	return &tmpl, meta, nil
}

// readDocument reads a JSON or YAML file and returns its content as JSON
func readDocument(path string) ([]byte, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	format := FormatFromPath(path)
	meta := NewMetadata(content, path, format)

	switch format {
	case FormatYAML:
		doc, err := yamlToJSON(content)
		if err != nil {
			return nil, nil, &LoadError{Path: path, Message: "failed to decode YAML", Cause: err}
		}
		return doc, meta, nil
	case FormatText:
		return nil, nil, &LoadError{Path: path, Message: "text files cannot hold structured records"}
	default:
		if !json.Valid(content) {
			return nil, nil, &LoadError{Path: path, Message: "file is not valid JSON"}
		}
		return content, meta, nil
	}
}

// yamlToJSON re-encodes a YAML document as JSON
func yamlToJSON(content []byte) ([]byte, error) {
	var value any
	if err := yaml.Unmarshal(content, &value); err != nil {
		return nil, err
	}
	normalized, err := jsonCompatible(value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(normalized)
}

// jsonCompatible converts YAML maps with non-string keys into string-keyed maps
func jsonCompatible(value any) (any, error) {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			converted, err := jsonCompatible(item)
			if err != nil {
				return nil, err
			}
			out[key] = converted
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			converted, err := jsonCompatible(item)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(key)] = converted
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			converted, err := jsonCompatible(item)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	default:
		return v, nil
	}
}
