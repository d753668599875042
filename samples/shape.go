package samples

import "github.com/dhamidi/jgen/java"

func init() {
	register("shape", "Shape", Package, Shape)
}

// Shape is an interface with an abstract method, a default method and a
// generic static helper.
func Shape() (*java.CompilationUnit, error) {
	cu := java.NewCompilationUnit(Package)
	shape := cu.Interface("Shape", java.Public)
	shape.Doc = doc("A plane figure.", "1.0")
	shape.Implements(java.Class("java.lang", "Comparable").Of(shape.Type()))

	shape.Method(java.Double.Type(), "area", 0).
		Returns("the area, never negative")

	shape.Method(java.Int.Type(), "compareTo", java.Default,
		java.Param(shape.Type(), "other").Documented("the shape to compare with")).
		Annotate(java.Annotate(java.Class("java.lang", "Override"))).
		Document("Orders shapes by area.").
		Implement("return Double.compare(area(), other.area());")

	t := java.TypeVar("T").Extends(shape.Type())
	collection := java.Class("java.util", "Collection")
	shape.Method(java.TypeVar("T"), "largest", java.Static,
		java.Param(collection.Of(java.Wildcard().Extends(java.TypeVar("T"))), "shapes").Documented("the candidates")).
		TypeParam(t, "the shape type").
		Throw(java.Class("java.util", "NoSuchElementException"), "if shapes is empty").
		Document("Returns the shape with the largest area.").
		Implement("return java.util.Collections.max(shapes);")

	return cu, nil
}
