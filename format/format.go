// Package format renders compilation units as Java source text.
package format

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/dhamidi/jgen/java"
)

var ErrMalformedUnit = errors.New("malformed compilation unit")

// Render prints cu. The result depends only on cu and its import table, and
// rendering never modifies cu.
func Render(cu *java.CompilationUnit) ([]byte, error) {
	var buf bytes.Buffer
	if err := Fprint(&buf, cu); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Fprint(w io.Writer, cu *java.CompilationUnit) error {
	if err := check(cu); err != nil {
		return err
	}
	p := NewJavaPrettyPrinter(w, cu.Imports)
	switch cu.Kind {
	case java.ModuleUnit:
		p.printModuleUnit(cu)
	case java.PackageUnit:
		p.printPackageUnit(cu)
	default:
		p.printOrdinaryUnit(cu)
	}
	return errors.Wrap(p.err, "write java source")
}

func check(cu *java.CompilationUnit) error {
	if cu == nil {
		return errors.Wrap(ErrMalformedUnit, "nil unit")
	}
	switch cu.Kind {
	case java.ModuleUnit:
		if cu.Module == nil || cu.Module.Name == "" {
			return errors.Wrap(ErrMalformedUnit, "module-info without a module declaration")
		}
	case java.PackageUnit:
		if cu.Package == "" {
			return errors.Wrap(ErrMalformedUnit, "package-info without a package")
		}
	default:
		if cu.Type == nil {
			return errors.Wrapf(ErrMalformedUnit, "unit in package %q has no type declaration", cu.Package)
		}
	}
	return nil
}
