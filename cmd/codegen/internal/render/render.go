// Package render turns an ordered entity table into palette source code.
package render

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/OCharnyshevich/entity-palette/cmd/codegen/internal/naming"
	"github.com/OCharnyshevich/entity-palette/cmd/codegen/internal/schema"
)

const (
	LangCSharp = "csharp"
	LangGo     = "go"
)

// Mapping is one generated ID -> entity type assignment.
type Mapping struct {
	ID   int
	Name string
}

// Document is everything a renderer needs for one palette file.
type Document struct {
	Version   string
	ClassName string
	// Namespace is the C# namespace or the Go package name, depending on
	// the renderer.
	Namespace string
	Mappings  []Mapping
}

// NewDocument builds a Document from entities in source order. Duplicate
// and out-of-range IDs are kept as they are.
func NewDocument(version, namespace string, entities []schema.Entity) (Document, error) {
	mappings := make([]Mapping, 0, len(entities))
	for _, e := range entities {
		name, err := naming.Identifier(e.DisplayName)
		if err != nil {
			return Document{}, fmt.Errorf("entity %d: %w", e.ID, err)
		}
		mappings = append(mappings, Mapping{ID: e.ID, Name: name})
	}

	return Document{
		Version:   version,
		ClassName: naming.FormatClassName(version),
		Namespace: namespace,
		Mappings:  mappings,
	}, nil
}

// Renderer writes a Document as source code in one target language.
type Renderer interface {
	Render(w io.Writer, doc Document) error
	// FileName returns the output file name for doc.
	FileName(doc Document) string
}

// For returns the renderer for lang.
func For(lang string) (Renderer, error) {
	switch lang {
	case LangCSharp:
		return NewCSharp(), nil
	case LangGo:
		return NewGo(), nil
	default:
		return nil, fmt.Errorf("unknown language %q (want %s or %s)", lang, LangCSharp, LangGo)
	}
}

// Languages lists the supported target languages.
func Languages() []string {
	return []string{LangCSharp, LangGo}
}

// PlatformEOL is the line separator of the host platform.
func PlatformEOL() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

func withEOL(s, eol string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if eol == "\n" {
		return s
	}
	return strings.ReplaceAll(s, "\n", eol)
}
