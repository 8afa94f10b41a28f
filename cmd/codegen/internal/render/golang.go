package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"
)

// Go renders a package-level palette map filled by init, one assignment per
// mapping so duplicate IDs behave like the C# dictionary: last one wins.
type Go struct {
	EOL string
}

func NewGo() *Go {
	return &Go{EOL: PlatformEOL()}
}

func (g *Go) FileName(doc Document) string {
	return strings.ToLower(doc.ClassName) + ".go"
}

func (g *Go) Render(w io.Writer, doc Document) error {
	table := unexported(doc.ClassName)

	f := jen.NewFile(doc.Namespace)
	f.HeaderComment("Code generated by codegen. DO NOT EDIT.")

	f.Var().Id(table).Op("=").Make(jen.Map(jen.Int()).Id("EntityType"), jen.Lit(len(doc.Mappings)))

	f.Func().Id("init").Params().BlockFunc(func(grp *jen.Group) {
		for _, m := range doc.Mappings {
			grp.Id(table).Index(jen.Lit(m.ID)).Op("=").Id("EntityType" + m.Name)
		}
	})

	f.Commentf("%s returns the entity palette for Minecraft %s.", doc.ClassName, doc.Version)
	f.Func().Id(doc.ClassName).Params().Map(jen.Int()).Id("EntityType").Block(
		jen.Return(jen.Id(table)),
	)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return fmt.Errorf("render go source: %w", err)
	}
	_, err := io.WriteString(w, withEOL(buf.String(), g.EOL))
	return err
}

func unexported(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}
