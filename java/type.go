package java

import (
	"strings"
)

// Primitive enumerates the fixed primitive kinds. The zero value marks a
// reference type.
type Primitive uint8

const (
	NotPrimitive Primitive = iota
	Boolean
	Byte
	Short
	Char
	Int
	Long
	Float
	Double
)

func (p Primitive) Keyword() string {
	switch p {
	case Boolean:
		return "boolean"
	case Byte:
		return "byte"
	case Short:
		return "short"
	case Char:
		return "char"
	case Int:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case Double:
		return "double"
	}
	return ""
}

func (p Primitive) Type() Type {
	return Type{Name: p.Keyword(), Primitive: p}
}

// Boxed returns the java.lang wrapper class of p.
func (p Primitive) Boxed() Type {
	switch p {
	case Boolean:
		return Class("java.lang", "Boolean")
	case Byte:
		return Class("java.lang", "Byte")
	case Short:
		return Class("java.lang", "Short")
	case Char:
		return Class("java.lang", "Character")
	case Int:
		return Class("java.lang", "Integer")
	case Long:
		return Class("java.lang", "Long")
	case Float:
		return Class("java.lang", "Float")
	case Double:
		return Class("java.lang", "Double")
	}
	return Object
}

type BoundKind uint8

const (
	BoundNone BoundKind = iota
	BoundExtends
	BoundSuper
)

func (b BoundKind) String() string {
	switch b {
	case BoundExtends:
		return "extends"
	case BoundSuper:
		return "super"
	}
	return ""
}

// Type references a type by name. It is a value: two references to the same
// (package, enclosing chain, name) are interchangeable.
type Type struct {
	Name       string
	Package    string
	Enclosing  *Type
	Primitive  Primitive
	Arguments  []Type
	ArrayDepth int
	Nullable   bool
	Bound      BoundKind
	Bounds     []Type

	void bool
}

var (
	Void   = Type{Name: "void", void: true}
	Object = Class("java.lang", "Object")
	String = Class("java.lang", "String")
)

// Class references a top-level class name in pkg.
func Class(pkg, name string) Type {
	return Type{Name: name, Package: pkg}
}

// TypeVar references a type variable such as T.
func TypeVar(name string) Type {
	return Type{Name: name}
}

func Wildcard() Type {
	return Type{Name: "?"}
}

// Nested references the member type name declared inside t.
func (t Type) Nested(name string) Type {
	outer := t
	outer.Arguments = nil
	outer.ArrayDepth = 0
	outer.Nullable = false
	return Type{Name: name, Package: t.Package, Enclosing: &outer}
}

func (t Type) Array(dims int) Type {
	t.ArrayDepth += dims
	return t
}

// Of parameterizes t with type arguments.
func (t Type) Of(args ...Type) Type {
	t.Arguments = append(append([]Type(nil), t.Arguments...), args...)
	return t
}

func (t Type) Extends(bounds ...Type) Type {
	t.Bound = BoundExtends
	t.Bounds = append([]Type(nil), bounds...)
	return t
}

func (t Type) Super(bounds ...Type) Type {
	t.Bound = BoundSuper
	t.Bounds = append([]Type(nil), bounds...)
	return t
}

func (t Type) AsNullable() Type {
	t.Nullable = true
	return t
}

func (t Type) IsPrimitive() bool {
	return t.Primitive != NotPrimitive && t.ArrayDepth == 0
}

func (t Type) IsArray() bool {
	return t.ArrayDepth > 0
}

func (t Type) IsVoid() bool {
	return t.void
}

// IsTypeVar reports whether t names a type variable or wildcard.
func (t Type) IsTypeVar() bool {
	return t.Package == "" && t.Enclosing == nil && t.Primitive == NotPrimitive && !t.void
}

// ElementType strips one array dimension.
func (t Type) ElementType() Type {
	if t.ArrayDepth == 0 {
		return t
	}
	t.ArrayDepth--
	return t
}

// MemberChain returns the name qualified by its enclosing types, e.g.
// "Map.Entry".
func (t Type) MemberChain() string {
	if t.Enclosing == nil {
		return t.Name
	}
	return t.Enclosing.MemberChain() + "." + t.Name
}

// Outermost returns the name of the top-level type containing t.
func (t Type) Outermost() string {
	for t.Enclosing != nil {
		t = *t.Enclosing
	}
	return t.Name
}

// QualifiedName returns the package-qualified member chain.
func (t Type) QualifiedName() string {
	if t.Package == "" {
		return t.MemberChain()
	}
	return t.Package + "." + t.MemberChain()
}

// SameAs reports whether t and other denote the same declared type.
func (t Type) SameAs(other Type) bool {
	return t.Package == other.Package &&
		t.MemberChain() == other.MemberChain() &&
		t.Primitive == other.Primitive &&
		t.void == other.void
}

// String renders t fully qualified, ignoring any import table.
func (t Type) String() string {
	return typeText(t, func(t Type) string { return t.QualifiedName() })
}

func typeText(t Type, name func(Type) string) string {
	var sb strings.Builder
	switch {
	case t.void:
		sb.WriteString("void")
	case t.Primitive != NotPrimitive:
		sb.WriteString(t.Primitive.Keyword())
	default:
		sb.WriteString(name(t))
	}
	if len(t.Arguments) > 0 {
		sb.WriteString("<")
		for i, arg := range t.Arguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(typeText(arg, name))
		}
		sb.WriteString(">")
	}
	if t.Name == "?" && t.Bound != BoundNone {
		sb.WriteString(" ")
		sb.WriteString(t.Bound.String())
		sb.WriteString(" ")
		writeBounds(&sb, t.Bounds, name)
	}
	for i := 0; i < t.ArrayDepth; i++ {
		sb.WriteString("[]")
	}
	return sb.String()
}

func writeBounds(sb *strings.Builder, bounds []Type, name func(Type) string) {
	for i, b := range bounds {
		if i > 0 {
			sb.WriteString(" & ")
		}
		sb.WriteString(typeText(b, name))
	}
}

// TypeParam declares a generic parameter of a type or method.
type TypeParam struct {
	Type        Type
	Annotations []Annotation
	Doc         string
}
