package samples

import "github.com/dhamidi/jgen/java"

func init() {
	register("module", "module-info", "", ModuleInfo)
}

// ModuleInfo declares the demo module.
func ModuleInfo() (*java.CompilationUnit, error) {
	cu := java.NewModuleUnit(Package, false)
	m := cu.Module
	m.Doc = doc("The demo module.", "1.0")

	requires := m.Group("requires", java.ByName)
	requires.Requires("java.sql").Transitive = true
	requires.Requires("java.logging")

	m.Exports(Package)
	m.Exports(Package + ".model").Qualify("com.example.app")
	m.Opens(Package + ".model")
	m.Uses(java.Class(Package, "Shape"))

	return cu, nil
}
