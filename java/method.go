package java

import "github.com/dhamidi/jgen/java/javadoc"

// Method declares a method or, with Constructor set, a constructor.
type Method struct {
	Name        string
	Constructor bool
	Result      Type
	Modifiers   Modifiers
	Annotations []Annotation
	TypeParams  []TypeParam
	Params      []Parameter
	Throws      []Exception
	// Body is nil for abstract and interface methods. An empty body prints
	// as {}.
	Body *string
	Doc  *javadoc.Comment

	imports *ImportTable
}

type Exception struct {
	Type Type
	Doc  string
}

func (m *Method) MemberName() string { return m.Name }
func (*Method) member()              {}

func (m *Method) addParams(params []Parameter) {
	for _, p := range params {
		m.imports.Import(p.Type)
		for _, a := range p.Annotations {
			m.imports.Import(a.Type)
		}
	}
	m.Params = append(m.Params, params...)
}

// Implement sets the body text. Lines are re-indented when printed.
func (m *Method) Implement(body string) *Method {
	m.Body = &body
	return m
}

func (m *Method) Throw(t Type, doc string) *Method {
	m.imports.Import(t)
	m.Throws = append(m.Throws, Exception{Type: t, Doc: doc})
	return m
}

func (m *Method) TypeParam(t Type, doc string) *Method {
	m.imports.Import(t)
	m.TypeParams = append(m.TypeParams, TypeParam{Type: t, Doc: doc})
	return m
}

func (m *Method) Annotate(a Annotation) *Method {
	m.imports.Import(a.Type)
	m.Annotations = append(m.Annotations, a)
	return m
}

func (m *Method) Document(text string) *Method {
	if m.Doc == nil {
		m.Doc = &javadoc.Comment{}
	}
	m.Doc.Text = text
	return m
}

// Returns documents the result value.
func (m *Method) Returns(doc string) *Method {
	if m.Doc == nil {
		m.Doc = &javadoc.Comment{}
	}
	m.Doc.Return = doc
	return m
}

// Initializer is a static or instance initializer block.
type Initializer struct {
	Static bool
	Body   string
}

func (i *Initializer) MemberName() string {
	if i.Static {
		return "static"
	}
	return ""
}
func (*Initializer) member() {}
