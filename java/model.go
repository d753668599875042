package java

import (
	"strings"

	"github.com/dhamidi/jgen/java/javadoc"
)

type UnitKind uint8

const (
	OrdinaryUnit UnitKind = iota
	ModuleUnit
	PackageUnit
)

func (k UnitKind) String() string {
	switch k {
	case ModuleUnit:
		return "module-info"
	case PackageUnit:
		return "package-info"
	}
	return "ordinary"
}

// CompilationUnit is the root model of one generated file. It is built by a
// single goroutine and is read-only once handed to a printer.
type CompilationUnit struct {
	Kind    UnitKind
	Package string
	Imports *ImportTable

	// Type is the root declaration of an ordinary unit.
	Type *TypeDecl
	// Module is the declaration of a module-info unit.
	Module *ModuleDecl

	// Doc and Annotations belong to the package of a package-info unit.
	Doc         *javadoc.Comment
	Annotations []Annotation
}

// NewCompilationUnit creates an ordinary unit in pkg. Every member of
// java.lang resolves without an import line.
func NewCompilationUnit(pkg string) *CompilationUnit {
	imports := NewImportTable(pkg)
	imports.Add("java.lang", WildcardMember, ImportWildcard, false, true)
	return &CompilationUnit{Kind: OrdinaryUnit, Package: pkg, Imports: imports}
}

// NewPackageUnit creates a package-info unit for pkg.
func NewPackageUnit(pkg string) *CompilationUnit {
	return &CompilationUnit{Kind: PackageUnit, Package: pkg, Imports: NewImportTable(pkg)}
}

// NewModuleUnit creates a module-info unit declaring module name.
func NewModuleUnit(name string, open bool) *CompilationUnit {
	cu := &CompilationUnit{Kind: ModuleUnit, Imports: NewImportTable("")}
	cu.Module = &ModuleDecl{Name: name, Open: open}
	return cu
}

// PackagePath splits the package name into its identifiers.
func (cu *CompilationUnit) PackagePath() []string {
	if cu.Package == "" {
		return nil
	}
	return strings.Split(cu.Package, ".")
}

func (cu *CompilationUnit) Class(name string, mods Modifiers) *TypeDecl {
	return cu.root(KindClass, name, mods)
}

func (cu *CompilationUnit) Interface(name string, mods Modifiers) *TypeDecl {
	return cu.root(KindInterface, name, mods)
}

func (cu *CompilationUnit) Enum(name string, mods Modifiers) *TypeDecl {
	return cu.root(KindEnum, name, mods)
}

// root sets the unit's single root type, replacing any earlier one.
func (cu *CompilationUnit) root(kind Kind, name string, mods Modifiers) *TypeDecl {
	td := newTypeDecl(kind, name, mods, cu.Package, nil, cu.Imports)
	cu.Imports.Import(td.Type())
	cu.Type = td
	return td
}

// Annotate adds a package annotation to a package-info unit.
func (cu *CompilationUnit) Annotate(a Annotation) *CompilationUnit {
	cu.Imports.Import(a.Type)
	cu.Annotations = append(cu.Annotations, a)
	return cu
}

// Member is a direct child of a type or module body.
type Member interface {
	MemberName() string
	member()
}

// SortFunc orders sibling members. It follows the cmp.Compare convention.
type SortFunc func(a, b Member) int

// ByName orders members by name.
func ByName(a, b Member) int {
	return strings.Compare(a.MemberName(), b.MemberName())
}

// Scope holds an ordered member list and the builders that append to it.
type Scope struct {
	Members []Member
	// Sort reorders Members at print time only.
	Sort SortFunc

	imports *ImportTable
	owner   *TypeDecl
}

// Add appends m as is. Types referenced by m are not imported.
func (s *Scope) Add(m Member) {
	s.Members = append(s.Members, m)
}

func (s *Scope) Field(t Type, name string, mods Modifiers) *Field {
	s.imports.Import(t)
	f := &Field{Type: t, Name: name, Modifiers: mods, imports: s.imports}
	s.Add(f)
	return f
}

func (s *Scope) Method(result Type, name string, mods Modifiers, params ...Parameter) *Method {
	s.imports.Import(result)
	m := &Method{Result: result, Name: name, Modifiers: mods, imports: s.imports}
	m.addParams(params)
	s.Add(m)
	return m
}

// Constructor declares a constructor named after the enclosing type.
func (s *Scope) Constructor(mods Modifiers, params ...Parameter) *Method {
	m := &Method{Name: s.owner.Name, Constructor: true, Modifiers: mods, imports: s.imports}
	m.addParams(params)
	s.Add(m)
	return m
}

func (s *Scope) Initializer(static bool, body string) *Initializer {
	init := &Initializer{Static: static, Body: body}
	s.Add(init)
	return init
}

func (s *Scope) Class(name string, mods Modifiers) *TypeDecl {
	return s.nested(KindClass, name, mods)
}

func (s *Scope) Interface(name string, mods Modifiers) *TypeDecl {
	return s.nested(KindInterface, name, mods)
}

func (s *Scope) Enum(name string, mods Modifiers) *TypeDecl {
	return s.nested(KindEnum, name, mods)
}

func (s *Scope) nested(kind Kind, name string, mods Modifiers) *TypeDecl {
	td := newTypeDecl(kind, name, mods, s.owner.Package, s.owner, s.imports)
	s.Add(td)
	return td
}

// Group adds a transparent container whose members are ordered by sort
// among themselves.
func (s *Scope) Group(name string, sort SortFunc) *Group {
	g := &Group{Name: name}
	g.Sort = sort
	g.imports = s.imports
	g.owner = s.owner
	s.Add(g)
	return g
}

// Group is transparent to the printer: its members are laid out as if they
// were siblings of the group's neighbours.
type Group struct {
	Scope
	Name string
}

func (g *Group) MemberName() string { return g.Name }
func (*Group) member()              {}
