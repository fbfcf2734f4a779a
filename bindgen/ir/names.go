package ir

import "github.com/iancoleman/strcase"

// ToTypeName normalizes a metadata identifier into the UpperCamelCase
// form used for generated type names. Pure and deterministic: the same
// input always yields the same identifier.
func ToTypeName(raw string) string {
	return strcase.ToCamel(raw)
}

// ToAccessorName normalizes a metadata identifier into the lower_snake
// form used for generated accessor identifiers.
func ToAccessorName(raw string) string {
	return strcase.ToSnake(raw)
}
