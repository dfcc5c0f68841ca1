// Package template reads and writes schedule templates as YAML, JSON or TOML
// files so schedules can be shared and versioned outside the database.
package template

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"gopkg.in/yaml.v3"
)

// Format is a template file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported template format")
	ErrNoSlots           = errors.New("template has no slots")
)

// Document is the on-disk shape of a schedule template.
type Document struct {
	Name           string            `json:"name" yaml:"name" toml:"name"`
	IsDefault      *bool             `json:"isDefault,omitempty" yaml:"isDefault,omitempty" toml:"isDefault,omitempty"`
	UseLLMFallback *bool             `json:"useLLMFallback,omitempty" yaml:"useLLMFallback,omitempty" toml:"useLLMFallback,omitempty"`
	Slots          []domain.SlotSpec `json:"slots" yaml:"slots" toml:"slots"`
}

// Template is a decoded and validated document.
type Template struct {
	Name           string
	IsDefault      bool
	UseLLMFallback bool
	Slots          []domain.Slot
}

// ParseFormat maps a format name or file extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// LoadFile reads a template from disk.
func LoadFile(path string) (*Template, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	// #nosec G304 - path is validated above
	f, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open template: %w", err)
	}
	defer f.Close()

	return Decode(f, format)
}

// SaveFile writes a schedule as a template, picking the format from the
// file extension.
func SaveFile(path string, schedule *domain.Schedule) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	resolved, err := resolvePath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, schedule, format); err != nil {
		return err
	}
	if err := os.WriteFile(resolved, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	return nil
}

// Decode reads and validates a template.
func Decode(r io.Reader, format Format) (*Template, error) {
	var doc Document

	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode yaml template: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode json template: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode toml template: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return doc.Template()
}

// Template validates the document.
func (d Document) Template() (*Template, error) {
	if len(d.Slots) == 0 {
		return nil, ErrNoSlots
	}
	slots, err := domain.NewSlots(d.Slots)
	if err != nil {
		return nil, err
	}

	t := &Template{
		Name:           strings.TrimSpace(d.Name),
		IsDefault:      true,
		UseLLMFallback: true,
		Slots:          slots,
	}
	if t.Name == "" {
		t.Name = domain.DefaultScheduleName
	}
	if d.IsDefault != nil {
		t.IsDefault = *d.IsDefault
	}
	if d.UseLLMFallback != nil {
		t.UseLLMFallback = *d.UseLLMFallback
	}
	return t, nil
}

// DocumentOf converts a schedule to its template document.
func DocumentOf(schedule *domain.Schedule) Document {
	isDefault := schedule.IsDefault()
	useLLM := schedule.UseLLMFallback()
	return Document{
		Name:           schedule.Name(),
		IsDefault:      &isDefault,
		UseLLMFallback: &useLLM,
		Slots:          domain.SlotSpecs(schedule.Slots()),
	}
}

// Encode writes a schedule as a template.
func Encode(w io.Writer, schedule *domain.Schedule, format Format) error {
	return EncodeDocument(w, DocumentOf(schedule), format)
}

// EncodeDocument writes a template document.
func EncodeDocument(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml template: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
