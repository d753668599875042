package samples

import "github.com/dhamidi/jgen/java"

func init() {
	register("hello", "HelloWorld", Package, HelloWorld)
}

// HelloWorld is a final class with a main method, a field and a private
// constructor.
func HelloWorld() (*java.CompilationUnit, error) {
	cu := java.NewCompilationUnit(Package)
	cls := cu.Class("HelloWorld", java.Public|java.Final)
	cls.Doc = doc("Prints a greeting.", "1.0")

	cls.Method(java.Void, "main", java.Public|java.Static,
		java.Param(java.String.Array(1), "args").Documented("ignored")).
		Document("Runs the program.").
		Implement(`new HelloWorld("Hello World").run();`)

	cls.Field(java.String, "text", java.Private|java.Final)

	cls.Constructor(java.Private, java.Param(java.String, "text").Documented("the text to print")).
		Implement("this.text = text;")

	cls.Method(java.Void, "run", java.Private).
		Implement("System.out.println(this.text);")

	return cu, nil
}
