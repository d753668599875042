package java

type Parameter struct {
	Name        string
	Type        Type
	IsFinal     bool
	IsVarargs   bool
	Annotations []Annotation
	Doc         string
}

func Param(t Type, name string) Parameter {
	return Parameter{Name: name, Type: t}
}

func (p Parameter) Final() Parameter {
	p.IsFinal = true
	return p
}

// Varargs marks p as the variable arity parameter; it must come last.
func (p Parameter) Varargs() Parameter {
	p.IsVarargs = true
	return p
}

func (p Parameter) Documented(doc string) Parameter {
	p.Doc = doc
	return p
}

func (p Parameter) Annotated(a Annotation) Parameter {
	p.Annotations = append(append([]Annotation(nil), p.Annotations...), a)
	return p
}

// Text renders the parameter as it appears in a signature.
func (p Parameter) Text(imports *ImportTable) string {
	var s string
	for _, a := range p.Annotations {
		s += a.Text(imports) + " "
	}
	if p.IsFinal {
		s += "final "
	}
	if p.IsVarargs && p.Type.ArrayDepth > 0 {
		s += imports.ResolvedName(p.Type.ElementType()) + "..."
	} else if p.IsVarargs {
		s += imports.ResolvedName(p.Type) + "..."
	} else {
		s += imports.ResolvedName(p.Type)
	}
	return s + " " + p.Name
}
