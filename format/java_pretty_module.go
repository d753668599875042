package format

import (
	"strings"

	"github.com/dhamidi/jgen/java"
)

func (p *JavaPrettyPrinter) printModuleUnit(cu *java.CompilationUnit) {
	if p.printImports() {
		p.blank()
	}

	mod := cu.Module
	p.printDoc(mod.Doc)
	p.printAnnotations(mod.Annotations)

	p.writeIndent()
	if mod.Open {
		p.write("open ")
	}
	p.write("module ")
	p.write(mod.Name)

	directives := flatten(mod.Members, mod.Sort)
	if len(directives) == 0 {
		p.write(" {}")
		p.newline()
		return
	}

	p.write(" {")
	p.newline()
	p.blank()
	p.indent++
	for _, d := range directives {
		if text := p.directive(d); text != "" {
			p.line(text)
		}
	}
	p.indent--
	p.blank()
	p.line("}")
}

func (p *JavaPrettyPrinter) directive(m java.Member) string {
	switch d := m.(type) {
	case *java.Requires:
		var sb strings.Builder
		sb.WriteString("requires ")
		if d.Transitive {
			sb.WriteString("transitive ")
		}
		if d.Static {
			sb.WriteString("static ")
		}
		sb.WriteString(d.Module)
		sb.WriteString(";")
		return sb.String()
	case *java.Exports:
		return "exports " + d.Package + qualifiedTo(d.To) + ";"
	case *java.Opens:
		return "opens " + d.Package + qualifiedTo(d.To) + ";"
	case *java.Uses:
		return "uses " + p.typeName(d.Service) + ";"
	case *java.Provides:
		return "provides " + p.typeName(d.Service) + " with " + p.typeList(d.With) + ";"
	}
	return ""
}

func qualifiedTo(modules []string) string {
	if len(modules) == 0 {
		return ""
	}
	return " to " + strings.Join(modules, ", ")
}
