package golang

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
)

// Go reserved words.
var reservedWords = map[string]bool{
	"break":       true,
	"case":        true,
	"chan":        true,
	"const":       true,
	"continue":    true,
	"default":     true,
	"defer":       true,
	"else":        true,
	"fallthrough": true,
	"for":         true,
	"func":        true,
	"go":          true,
	"goto":        true,
	"if":          true,
	"import":      true,
	"interface":   true,
	"map":         true,
	"package":     true,
	"range":       true,
	"return":      true,
	"select":      true,
	"struct":      true,
	"switch":      true,
	"type":        true,
	"var":         true,
}

// Identifiers the emitted accessor bodies use for their own locals.
// Parameters colliding with these are escaped the same way as
// reserved words.
var emitterLocals = map[string]bool{
	"api":    true,
	"call":   true,
	"client": true,
	"err":    true,
}

// escapeReservedWord escapes a reserved word by appending an underscore.
func escapeReservedWord(name string) string {
	if reservedWords[name] || emitterLocals[name] {
		return name + "_"
	}
	return name
}

// paramName sanitizes a metadata field name into a method parameter
// identifier, keeping the metadata's lower_snake form.
func paramName(name string) string {
	return escapeReservedWord(sanitizeIdentifier(name))
}

// exportedName derives the exported Go identifier for a normalized
// lower_snake accessor name.
func exportedName(name string) string {
	return strcase.ToCamel(name)
}

// fieldName derives the exported struct field identifier for a
// metadata field name.
func fieldName(name string) string {
	return strcase.ToCamel(sanitizeIdentifier(name))
}

// sanitizeIdentifier makes an identifier valid Go.
func sanitizeIdentifier(name string) string {
	if name == "" {
		return "_"
	}

	var result strings.Builder
	if unicode.IsDigit(rune(name[0])) {
		result.WriteRune('_')
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			result.WriteRune(r)
		} else {
			result.WriteRune('_')
		}
	}
	return result.String()
}
