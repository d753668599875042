package java

import "github.com/iancoleman/strcase"

// GetterName returns the bean accessor name for a property of type t.
func GetterName(property string, t Type) string {
	if t.Primitive == Boolean && t.ArrayDepth == 0 {
		return "is" + strcase.ToCamel(property)
	}
	return "get" + strcase.ToCamel(property)
}

func SetterName(property string) string {
	return "set" + strcase.ToCamel(property)
}

// ConstantName converts an arbitrary name to SCREAMING_SNAKE_CASE.
func ConstantName(name string) string {
	return strcase.ToScreamingSnake(name)
}

// FieldName converts an arbitrary name to lowerCamelCase.
func FieldName(name string) string {
	return strcase.ToLowerCamel(name)
}
