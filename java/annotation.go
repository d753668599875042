package java

type Annotation struct {
	Type Type
	// Args is printed verbatim between parentheses, e.g. `since = "1.2"`.
	Args string
}

func Annotate(t Type, args ...string) Annotation {
	a := Annotation{Type: t}
	if len(args) > 0 {
		a.Args = args[0]
	}
	return a
}

// Text renders the annotation, resolving its type through imports. A nil
// table renders the qualified name.
func (a Annotation) Text(imports *ImportTable) string {
	name := a.Type.String()
	if imports != nil {
		name = imports.ResolvedName(a.Type)
	}
	if a.Args == "" {
		return "@" + name
	}
	return "@" + name + "(" + a.Args + ")"
}
