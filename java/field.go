package java

import "github.com/dhamidi/jgen/java/javadoc"

type Field struct {
	Type        Type
	Name        string
	Modifiers   Modifiers
	Annotations []Annotation
	// Value is the initializer expression; empty means none.
	Value string
	Doc   *javadoc.Comment

	imports *ImportTable
}

func (f *Field) MemberName() string { return f.Name }
func (*Field) member()              {}

func (f *Field) Init(value string) *Field {
	f.Value = value
	return f
}

func (f *Field) Annotate(a Annotation) *Field {
	f.imports.Import(a.Type)
	f.Annotations = append(f.Annotations, a)
	return f
}

func (f *Field) Document(text string) *Field {
	f.Doc = javadoc.Text(text)
	return f
}
