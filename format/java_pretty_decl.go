package format

import (
	"strings"

	"github.com/dhamidi/jgen/java"
	"github.com/dhamidi/jgen/java/javadoc"
)

func (p *JavaPrettyPrinter) printOrdinaryUnit(cu *java.CompilationUnit) {
	if cu.Package != "" {
		p.line("package " + cu.Package + ";")
		p.blank()
	}
	if p.printImports() {
		p.blank()
	}
	p.printTypeDecl(cu.Type, false)
}

func (p *JavaPrettyPrinter) printPackageUnit(cu *java.CompilationUnit) {
	p.printDoc(cu.Doc)
	p.printAnnotations(cu.Annotations)
	p.line("package " + cu.Package + ";")
	if len(p.imports.Printable()) > 0 {
		p.blank()
		p.printImports()
	}
}

// printImports prints the import section and reports whether it was
// non-empty.
func (p *JavaPrettyPrinter) printImports() bool {
	imports := p.imports.Printable()
	for _, imp := range imports {
		if imp.Static {
			p.line("import static " + imp.Key() + ";")
		} else {
			p.line("import " + imp.Key() + ";")
		}
	}
	return len(imports) > 0
}

func (p *JavaPrettyPrinter) printTypeDecl(td *java.TypeDecl, nested bool) {
	p.printDoc(typeComment(td))
	p.printAnnotations(td.Annotations)

	p.writeIndent()
	p.printModifiers(td.Modifiers)
	p.write(string(td.Kind))
	p.write(" ")
	p.write(td.Name)
	p.write(p.typeParams(td.TypeParams))

	switch td.Kind {
	case java.KindClass:
		if td.Super != nil {
			p.write(" extends ")
			p.write(p.typeName(*td.Super))
		}
		if len(td.Interfaces) > 0 {
			p.write(" implements ")
			p.write(p.typeList(td.Interfaces))
		}
	case java.KindInterface:
		if len(td.Interfaces) > 0 {
			p.write(" extends ")
			p.write(p.typeList(td.Interfaces))
		}
	case java.KindEnum:
		if len(td.Interfaces) > 0 {
			p.write(" implements ")
			p.write(p.typeList(td.Interfaces))
		}
	}

	members := flatten(td.Members, td.Sort)
	if len(members) == 0 && len(td.Constants) == 0 {
		p.write(" {}")
		p.newline()
	} else {
		p.write(" {")
		p.newline()
		p.blank()

		p.indent++
		if td.Kind == java.KindEnum {
			p.printEnumConstants(td.Constants, len(members) > 0)
		}
		p.printMembers(members)
		p.indent--

		p.line("}")
	}

	if nested {
		p.blank()
	}
}

func typeComment(td *java.TypeDecl) *javadoc.Comment {
	c := td.Doc.Clone()
	for _, tp := range td.TypeParams {
		c.TypeParams = append(c.TypeParams, javadoc.Tag{Name: tp.Type.Name, Text: tp.Doc})
	}
	return c
}

// printEnumConstants prints the constant list. Body declarations after it
// need the terminating semicolon even when the list is empty.
func (p *JavaPrettyPrinter) printEnumConstants(constants []*java.EnumConstant, membersFollow bool) {
	if len(constants) == 0 {
		if membersFollow {
			p.line(";")
			p.blank()
		}
		return
	}
	for i, c := range constants {
		p.printDoc(c.Doc)
		p.printAnnotations(c.Annotations)

		p.writeIndent()
		p.write(c.Name)
		if len(c.Args) > 0 {
			p.write("(" + strings.Join(c.Args, ", ") + ")")
		}
		switch {
		case i < len(constants)-1:
			p.write(",")
		case membersFollow:
			p.write(";")
		}
		p.newline()
	}
	p.blank()
}

func (p *JavaPrettyPrinter) printMembers(members []java.Member) {
	for i, m := range members {
		var next java.Member
		if i+1 < len(members) {
			next = members[i+1]
		}
		p.printMember(m, next)
	}
}

func (p *JavaPrettyPrinter) printMember(m java.Member, next java.Member) {
	switch m := m.(type) {
	case *java.Field:
		p.printField(m)
		if _, ok := next.(*java.Field); !ok {
			p.blank()
		}
	case *java.Method:
		p.printMethod(m)
		p.blank()
	case *java.Initializer:
		p.printInitializer(m)
		p.blank()
	case *java.TypeDecl:
		p.printTypeDecl(m, true)
	}
}

func (p *JavaPrettyPrinter) printField(f *java.Field) {
	p.printDoc(f.Doc)
	p.printAnnotations(f.Annotations)

	p.writeIndent()
	p.printModifiers(f.Modifiers)
	p.write(p.typeName(f.Type))
	p.write(" ")
	p.write(f.Name)
	if f.Value != "" {
		p.write(" = ")
		p.write(f.Value)
	}
	p.write(";")
	p.newline()
}

func (p *JavaPrettyPrinter) printMethod(m *java.Method) {
	p.printDoc(p.methodComment(m))
	p.printAnnotations(m.Annotations)

	p.writeIndent()
	p.printModifiers(m.Modifiers)
	if tp := p.typeParams(m.TypeParams); tp != "" {
		p.write(tp)
		p.write(" ")
	}
	if !m.Constructor {
		p.write(p.typeName(m.Result))
		p.write(" ")
	}
	p.write(m.Name)
	p.write("(")
	for i, param := range m.Params {
		if i > 0 {
			p.write(", ")
		}
		p.write(param.Text(p.imports))
	}
	p.write(")")
	if len(m.Throws) > 0 {
		p.write(" throws ")
		types := make([]java.Type, len(m.Throws))
		for i, e := range m.Throws {
			types[i] = e.Type
		}
		p.write(p.typeList(types))
	}

	if m.Body == nil {
		p.write(";")
		p.newline()
		return
	}
	p.printBlock(*m.Body)
}

// printBlock finishes the current line with a braced block.
func (p *JavaPrettyPrinter) printBlock(body string) {
	if strings.TrimSpace(body) == "" {
		p.write(" {}")
		p.newline()
		return
	}
	p.write(" {")
	p.newline()
	p.printBlockBody(body)
	p.line("}")
}

func (p *JavaPrettyPrinter) methodComment(m *java.Method) *javadoc.Comment {
	c := m.Doc.Clone()
	for _, tp := range m.TypeParams {
		c.TypeParams = append(c.TypeParams, javadoc.Tag{Name: tp.Type.Name, Text: tp.Doc})
	}
	for _, param := range m.Params {
		c.Params = append(c.Params, javadoc.Tag{Name: param.Name, Text: param.Doc})
	}
	for _, e := range m.Throws {
		c.Throws = append(c.Throws, javadoc.Tag{Name: p.typeName(e.Type), Text: e.Doc})
	}
	return c
}

func (p *JavaPrettyPrinter) printInitializer(init *java.Initializer) {
	p.writeIndent()
	if init.Static {
		p.write("static")
		p.printBlock(init.Body)
		return
	}
	p.write("{")
	if strings.TrimSpace(init.Body) == "" {
		p.write("}")
		p.newline()
		return
	}
	p.newline()
	p.printBlockBody(init.Body)
	p.line("}")
}
