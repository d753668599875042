// Package samples registers the built-in templates. Importing it for side
// effects makes them available to the generate command.
package samples

import (
	"runtime"

	"github.com/dhamidi/jgen/generate"
	"github.com/dhamidi/jgen/java"
)

// Package is the Java package the samples are generated into.
const Package = "com.example.demo"

// SourceSet is the source set below the output root.
const SourceSet = "generated"

// register adds a template defined in the calling file. The file's
// modification time marks the template as changed.
func register(name, fileName, pkg string, produce func() (*java.CompilationUnit, error)) {
	_, file, _, _ := runtime.Caller(1)
	generate.Register(&generate.Template{
		Name:       name,
		SourceFile: file,
		Target:     generate.Target{SourceSet: SourceSet, Package: pkg, FileName: fileName},
		Produce:    produce,
	})
}
