package samples

import (
	"strconv"

	"github.com/dhamidi/jgen/java"
)

type enumValue struct {
	name string
	hex  string
}

var colors = []enumValue{
	{"dark red", "#8b0000"},
	{"forest green", "#228b22"},
	{"sky blue", "#87ceeb"},
}

func init() {
	register("color", "Color", Package, Color)
}

// Color is an enum with constructor arguments, a getter and a static
// lookup method.
func Color() (*java.CompilationUnit, error) {
	cu := java.NewCompilationUnit(Package)
	e := cu.Enum("Color", java.Public)
	e.Doc = doc("A small palette.", "1.0")

	for _, c := range colors {
		e.Constant(java.ConstantName(c.name), strconv.Quote(c.hex))
	}

	hex := e.Field(java.String, "hex", java.Private|java.Final)
	e.Constructor(0, java.Param(java.String, hex.Name)).
		Implement("this.hex = hex;")

	e.Method(java.String, java.GetterName(hex.Name, hex.Type), java.Public).
		Returns("the color as #rrggbb").
		Implement("return hex;")

	optional := java.Class("java.util", "Optional")
	e.Import(java.Class("java.util", "Arrays"))
	e.Method(optional.Of(e.Type()), "fromHex", java.Public|java.Static,
		java.Param(java.String, "hex").Documented("a #rrggbb code")).
		Document("Finds the color with the given code, ignoring case.").
		Returns("the color, if any").
		Implement(`
			return Arrays.stream(values())
				.filter(c -> c.hex.equalsIgnoreCase(hex))
				.findFirst();
		`)

	return cu, nil
}
