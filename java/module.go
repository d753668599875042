package java

import "github.com/dhamidi/jgen/java/javadoc"

// ModuleDecl is the body of a module-info unit.
type ModuleDecl struct {
	Directives

	Name        string
	Open        bool
	Annotations []Annotation
	Doc         *javadoc.Comment
}

// Directives is an ordered list of module directives.
type Directives struct {
	Members []Member
	// Sort reorders Members at print time only. Nil keeps registration
	// order.
	Sort SortFunc
}

func (d *Directives) Requires(module string) *Requires {
	r := &Requires{Module: module}
	d.Members = append(d.Members, r)
	return r
}

func (d *Directives) Exports(pkg string) *Exports {
	e := &Exports{Package: pkg}
	d.Members = append(d.Members, e)
	return e
}

func (d *Directives) Opens(pkg string) *Opens {
	o := &Opens{Package: pkg}
	d.Members = append(d.Members, o)
	return o
}

func (d *Directives) Uses(service Type) *Uses {
	u := &Uses{Service: service}
	d.Members = append(d.Members, u)
	return u
}

func (d *Directives) Provides(service Type, impls ...Type) *Provides {
	p := &Provides{Service: service, With: impls}
	d.Members = append(d.Members, p)
	return p
}

// Group adds a set of directives ordered by sort among themselves.
func (d *Directives) Group(name string, sort SortFunc) *DirectiveGroup {
	g := &DirectiveGroup{Name: name}
	g.Sort = sort
	d.Members = append(d.Members, g)
	return g
}

type DirectiveGroup struct {
	Directives
	Name string
}

func (g *DirectiveGroup) MemberName() string { return g.Name }
func (*DirectiveGroup) member()              {}

type Requires struct {
	Module     string
	Transitive bool
	Static     bool
}

func (r *Requires) MemberName() string { return r.Module }
func (*Requires) member()              {}

type Exports struct {
	Package string
	To      []string
}

func (e *Exports) MemberName() string { return e.Package }
func (*Exports) member()              {}

// Qualify restricts the export to the given modules.
func (e *Exports) Qualify(modules ...string) *Exports {
	e.To = append(e.To, modules...)
	return e
}

type Opens struct {
	Package string
	To      []string
}

func (o *Opens) MemberName() string { return o.Package }
func (*Opens) member()              {}

func (o *Opens) Qualify(modules ...string) *Opens {
	o.To = append(o.To, modules...)
	return o
}

type Uses struct {
	Service Type
}

func (u *Uses) MemberName() string { return u.Service.QualifiedName() }
func (*Uses) member()              {}

type Provides struct {
	Service Type
	With    []Type
}

func (p *Provides) MemberName() string { return p.Service.QualifiedName() }
func (*Provides) member()              {}
