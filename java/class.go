package java

import "github.com/dhamidi/jgen/java/javadoc"

type Kind string

const (
	KindClass     Kind = "class"
	KindInterface Kind = "interface"
	KindEnum      Kind = "enum"
)

// TypeDecl declares a class, interface or enum. Body members are added
// through the embedded Scope.
type TypeDecl struct {
	Scope

	Kind        Kind
	Name        string
	Modifiers   Modifiers
	Annotations []Annotation
	TypeParams  []TypeParam
	Super       *Type
	Interfaces  []Type
	Constants   []*EnumConstant
	Doc         *javadoc.Comment

	Package   string
	Enclosing *TypeDecl
}

func newTypeDecl(kind Kind, name string, mods Modifiers, pkg string, enclosing *TypeDecl, imports *ImportTable) *TypeDecl {
	td := &TypeDecl{
		Kind:      kind,
		Name:      name,
		Modifiers: mods,
		Package:   pkg,
		Enclosing: enclosing,
	}
	td.imports = imports
	td.owner = td
	return td
}

func (td *TypeDecl) MemberName() string { return td.Name }
func (*TypeDecl) member()               {}

// Type returns a reference to the declared type.
func (td *TypeDecl) Type() Type {
	if td.Enclosing == nil {
		return Class(td.Package, td.Name)
	}
	return td.Enclosing.Type().Nested(td.Name)
}

// Extends sets the superclass of a class.
func (td *TypeDecl) Extends(t Type) *TypeDecl {
	td.imports.Import(t)
	td.Super = &t
	return td
}

// Implements adds super-interfaces. For interfaces these print as extends.
func (td *TypeDecl) Implements(types ...Type) *TypeDecl {
	for _, t := range types {
		td.imports.Import(t)
	}
	td.Interfaces = append(td.Interfaces, types...)
	return td
}

func (td *TypeDecl) TypeParam(t Type, doc string) *TypeDecl {
	td.imports.Import(t)
	td.TypeParams = append(td.TypeParams, TypeParam{Type: t, Doc: doc})
	return td
}

func (td *TypeDecl) Annotate(a Annotation) *TypeDecl {
	td.imports.Import(a.Type)
	td.Annotations = append(td.Annotations, a)
	return td
}

// Constant appends an enum constant. Args, if given, are printed verbatim
// between parentheses.
func (td *TypeDecl) Constant(name string, args ...string) *EnumConstant {
	c := &EnumConstant{Name: name, Args: args}
	td.Constants = append(td.Constants, c)
	return c
}

// Import registers t with the unit's import table, e.g. for types that only
// appear in method bodies.
func (td *TypeDecl) Import(t Type) *TypeDecl {
	td.imports.Import(t)
	return td
}

// ImportAs registers t with a forced import mode.
func (td *TypeDecl) ImportAs(t Type, mode ImportMode) *TypeDecl {
	td.imports.ImportAs(t, mode)
	return td
}

type EnumConstant struct {
	Name        string
	Args        []string
	Annotations []Annotation
	Doc         *javadoc.Comment
}
