// Package generate renders registered templates to disk. Files are written
// only when their content changes, and templates whose output is newer than
// both the template and the generator are not rendered at all.
package generate

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhamidi/jgen/java"
)

// Target locates the generated file below the output root.
type Target struct {
	Folder    string
	SourceSet string
	Language  string // defaults to "java"
	Package   string
	FileName  string
	Extension string // defaults to "java"
}

// Path returns
// root/[folder/][sourceSet/]language/package/path/fileName.extension.
func (t Target) Path(root string) string {
	language := t.Language
	if language == "" {
		language = "java"
	}
	extension := t.Extension
	if extension == "" {
		extension = "java"
	}

	parts := []string{root}
	if t.Folder != "" {
		parts = append(parts, t.Folder)
	}
	if t.SourceSet != "" {
		parts = append(parts, t.SourceSet)
	}
	parts = append(parts, language)
	if t.Package != "" {
		parts = append(parts, strings.Split(t.Package, ".")...)
	}
	parts = append(parts, t.FileName+"."+extension)
	return filepath.Join(parts...)
}

// Template produces one compilation unit.
type Template struct {
	Name string
	// SourceFile is the file the template is defined in. Its modification
	// time is used when Modified is zero.
	SourceFile string
	Modified   time.Time
	Target     Target
	Produce    func() (*java.CompilationUnit, error)
}

// sourceTimestamp returns the template's modification time, or the zero
// time when it is unknown.
func (t *Template) sourceTimestamp() time.Time {
	if !t.Modified.IsZero() {
		return t.Modified
	}
	if t.SourceFile == "" {
		return time.Time{}
	}
	info, err := os.Stat(t.SourceFile)
	if err != nil || !info.Mode().IsRegular() {
		return time.Time{}
	}
	return info.ModTime()
}

// TargetFor places a unit's file in the directory of its package. Module
// and package units use the names javac expects.
func TargetFor(cu *java.CompilationUnit, folder, sourceSet string) Target {
	t := Target{Folder: folder, SourceSet: sourceSet, Package: cu.Package}
	switch cu.Kind {
	case java.ModuleUnit:
		t.FileName = "module-info"
	case java.PackageUnit:
		t.FileName = "package-info"
	default:
		if cu.Type != nil {
			t.FileName = cu.Type.Name
		}
	}
	return t
}
