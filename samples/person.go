package samples

import (
	"fmt"
	"strings"

	"github.com/dhamidi/jgen/java"
)

type property struct {
	name string
	typ  java.Type
	doc  string
}

var personProperties = []property{
	{"name", java.String, "the display name"},
	{"age", java.Int.Type(), "the age in years"},
	{"active", java.Boolean.Type(), "whether the account is enabled"},
	{"emails", java.Class("java.util", "List").Of(java.String), "the e-mail addresses"},
}

func init() {
	register("person", "Person", Package+".model", Person)
}

// Person is a mutable bean: private fields, sorted accessors, equals and
// hashCode.
func Person() (*java.CompilationUnit, error) {
	cu := java.NewCompilationUnit(Package + ".model")
	cls := cu.Class("Person", java.Public)
	cls.Doc = doc("A person record.\n\nInstances are not thread-safe.", "1.1")
	objects := java.Class("java.util", "Objects")
	cls.Import(objects)

	for _, p := range personProperties {
		cls.Field(p.typ, p.name, java.Private)
	}

	accessors := cls.Group("accessors", java.ByName)
	for _, p := range personProperties {
		accessors.Method(p.typ, java.GetterName(p.name, p.typ), java.Public).
			Returns(p.doc).
			Implement("return " + p.name + ";")
		accessors.Method(java.Void, java.SetterName(p.name), java.Public,
			java.Param(p.typ, p.name).Documented(p.doc)).
			Implement("this." + p.name + " = " + p.name + ";")
	}

	names := make([]string, len(personProperties))
	comparisons := make([]string, len(personProperties))
	for i, p := range personProperties {
		names[i] = p.name
		if p.typ.IsPrimitive() {
			comparisons[i] = fmt.Sprintf("%s == other.%s", p.name, p.name)
		} else {
			comparisons[i] = fmt.Sprintf("Objects.equals(%s, other.%s)", p.name, p.name)
		}
	}

	cls.Method(java.Boolean.Type(), "equals", java.Public, java.Param(java.Object, "o")).
		Annotate(java.Annotate(java.Class("java.lang", "Override"))).
		Implement(fmt.Sprintf(`
			if (this == o) return true;
			if (!(o instanceof Person)) return false;
			Person other = (Person) o;
			return %s;`, strings.Join(comparisons, "\n\t\t\t\t&& ")))

	cls.Method(java.Int.Type(), "hashCode", java.Public).
		Annotate(java.Annotate(java.Class("java.lang", "Override"))).
		Implement("return Objects.hash(" + strings.Join(names, ", ") + ");")

	return cu, nil
}
