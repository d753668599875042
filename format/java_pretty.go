package format

import (
	"io"
	"slices"
	"strings"

	"github.com/dhamidi/jgen/java"
	"github.com/dhamidi/jgen/java/javadoc"
)

// JavaPrettyPrinter renders one compilation unit. Its only state is the
// indent depth and the line-start flag, so a fresh printer is cheap and
// independent units can be printed in parallel.
type JavaPrettyPrinter struct {
	w           io.Writer
	imports     *java.ImportTable
	indent      int
	indentStr   string
	atLineStart bool
	err         error
}

func NewJavaPrettyPrinter(w io.Writer, imports *java.ImportTable) *JavaPrettyPrinter {
	if imports == nil {
		imports = java.NewImportTable("")
	}
	return &JavaPrettyPrinter{
		w:           w,
		imports:     imports,
		indentStr:   "    ",
		atLineStart: true,
	}
}

func (p *JavaPrettyPrinter) writeIndent() {
	if !p.atLineStart {
		return
	}
	for i := 0; i < p.indent; i++ {
		p.write(p.indentStr)
	}
	p.atLineStart = false
}

func (p *JavaPrettyPrinter) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *JavaPrettyPrinter) newline() {
	p.write("\n")
	p.atLineStart = true
}

// line writes s on its own indented line.
func (p *JavaPrettyPrinter) line(s string) {
	p.writeIndent()
	p.write(s)
	p.newline()
}

// blank writes an empty line without indentation.
func (p *JavaPrettyPrinter) blank() {
	p.newline()
}

func (p *JavaPrettyPrinter) indentation() string {
	return strings.Repeat(p.indentStr, p.indent)
}

func (p *JavaPrettyPrinter) printDoc(c *javadoc.Comment) {
	text := javadoc.Layout(c, p.indentation())
	if text == "" {
		return
	}
	p.write(text)
	p.newline()
}

func (p *JavaPrettyPrinter) printAnnotations(annotations []java.Annotation) {
	for _, a := range annotations {
		p.line(a.Text(p.imports))
	}
}

func (p *JavaPrettyPrinter) printModifiers(mods java.Modifiers) {
	if s := mods.String(); s != "" {
		p.write(s)
		p.write(" ")
	}
}

func (p *JavaPrettyPrinter) typeName(t java.Type) string {
	return p.imports.ResolvedName(t)
}

func (p *JavaPrettyPrinter) typeList(types []java.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = p.typeName(t)
	}
	return strings.Join(names, ", ")
}

func (p *JavaPrettyPrinter) typeParams(params []java.TypeParam) string {
	if len(params) == 0 {
		return ""
	}
	decls := make([]string, len(params))
	for i, tp := range params {
		var sb strings.Builder
		for _, a := range tp.Annotations {
			sb.WriteString(a.Text(p.imports))
			sb.WriteString(" ")
		}
		sb.WriteString(p.imports.Declaration(tp.Type))
		decls[i] = sb.String()
	}
	return "<" + strings.Join(decls, ", ") + ">"
}

// printBlockBody prints body text one level deeper than the current indent.
// Blank edges are dropped and the common leading indentation is removed.
func (p *JavaPrettyPrinter) printBlockBody(body string) {
	p.indent++
	for _, l := range bodyLines(body) {
		if l == "" {
			p.blank()
			continue
		}
		p.line(l)
	}
	p.indent--
}

func bodyLines(body string) []string {
	lines := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
	for i, l := range lines {
		lines[i] = expandTabs(l)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	common := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if common < 0 || n < common {
			common = n
		}
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		l = strings.TrimRight(l, " \t")
		if l == "" {
			continue
		}
		out[i] = l[common:]
	}
	return out
}

// expandTabs replaces the tabs of the leading indentation with four spaces.
func expandTabs(l string) string {
	rest := strings.TrimLeft(l, " \t")
	lead := l[:len(l)-len(rest)]
	if !strings.Contains(lead, "\t") {
		return l
	}
	return strings.ReplaceAll(lead, "\t", "    ") + rest
}

// flatten applies each scope's sort to a copy of its members and expands
// groups in place, yielding the members in print order.
func flatten(members []java.Member, sort java.SortFunc) []java.Member {
	ordered := members
	if sort != nil {
		ordered = slices.Clone(members)
		slices.SortStableFunc(ordered, sort)
	}

	var out []java.Member
	for _, m := range ordered {
		switch g := m.(type) {
		case *java.Group:
			out = append(out, flatten(g.Members, g.Sort)...)
		case *java.DirectiveGroup:
			out = append(out, flatten(g.Members, g.Sort)...)
		default:
			out = append(out, m)
		}
	}
	return out
}
