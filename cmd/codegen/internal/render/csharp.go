package render

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const statementIndent = "\t\t\t"

var csharpTemplate = template.Must(template.New("").Funcs(template.FuncMap{
	"statements": statements,
}).ParseFS(templateFS, "templates/csharp.cs.tmpl"))

// CSharp renders an EntityPalette subclass with a static dictionary
// initializer.
type CSharp struct {
	EOL string
}

func NewCSharp() *CSharp {
	return &CSharp{EOL: PlatformEOL()}
}

func (c *CSharp) FileName(doc Document) string {
	return doc.ClassName + ".cs"
}

func (c *CSharp) Render(w io.Writer, doc Document) error {
	var buf bytes.Buffer
	if err := csharpTemplate.ExecuteTemplate(&buf, "csharp.cs.tmpl", doc); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	_, err := io.WriteString(w, withEOL(buf.String(), c.EOL))
	return err
}

// MappingStatement formats one dictionary assignment.
func MappingStatement(m Mapping) string {
	return fmt.Sprintf("mappings[%d] = EntityType.%s;", m.ID, m.Name)
}

// statements joins the mapping statements; the template already indents
// the first one.
func statements(mappings []Mapping) string {
	lines := make([]string, len(mappings))
	for i, m := range mappings {
		if i == 0 {
			lines[i] = MappingStatement(m)
			continue
		}
		lines[i] = statementIndent + MappingStatement(m)
	}
	return strings.Join(lines, "\n")
}
