package samples

import (
	"github.com/dhamidi/jgen/java"
	"github.com/dhamidi/jgen/java/javadoc"
)

func init() {
	register("package-info", "package-info", Package, PackageInfo)
}

func PackageInfo() (*java.CompilationUnit, error) {
	cu := java.NewPackageUnit(Package)
	cu.Doc = &javadoc.Comment{
		Text: "Demo types.\n<ul>\n<li>{@link Shape}</li>\n<li>{@link Color}</li>\n</ul>",
		See:  []string{"com.example.demo.model.Person"},
	}
	cu.Annotate(java.Annotate(java.Class("javax.annotation", "ParametersAreNonnullByDefault")))
	return cu, nil
}
