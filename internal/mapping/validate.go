package mapping

import (
	"fmt"
	"strconv"

	"stringenum-generator/internal/diagnostic"
)

// Validate checks the structure of a declaration file. Whether the declared
// types and variants exist is checked later, against the loaded packages.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "declaration file is nil", "", "")
		return res
	}

	if f.Version != SchemaVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported version %q, want %q", f.Version, SchemaVersion), "", "")
	}

	type key struct{ pkg, typ string }

	seen := make(map[key]int)

	for i := range f.Enums {
		e := &f.Enums[i]
		pos := f.pos(e.Line, 0)

		if e.Type == "" {
			res.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     "missing_type",
				Message:  fmt.Sprintf("enums[%d] has no type", i),
				Pos:      pos,
			})

			continue
		}

		k := key{pkg: e.Package, typ: e.Type}
		if first, dup := seen[k]; dup {
			res.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     "duplicate_type",
				Message:  fmt.Sprintf("declared again, first at line %d", first),
				Enum:     e.Type,
				Pos:      pos,
			})

			continue
		}

		seen[k] = e.Line

		validateLabels(res, f, e)
	}

	return res
}

func validateLabels(res *diagnostic.Diagnostics, f *File, e *EnumEntry) {
	seen := make(map[string]bool)

	for _, label := range e.Labels {
		pos := f.pos(label.Line, label.Column)

		if label.Invalid != "" {
			res.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     "invalid_label",
				Message:  label.Invalid,
				Enum:     e.Type,
				Variant:  label.Variant,
				Pos:      pos,
			})
		}

		if seen[label.Variant] {
			res.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     "duplicate_label",
				Message:  "variant labeled more than once",
				Enum:     e.Type,
				Variant:  label.Variant,
				Pos:      pos,
			})
		}

		seen[label.Variant] = true
	}
}

// pos formats a position inside the file. Column 0 is omitted.
func (f *File) pos(line, column int) string {
	if line == 0 {
		return f.Path
	}

	s := strconv.Itoa(line)
	if column > 0 {
		s += ":" + strconv.Itoa(column)
	}

	if f.Path == "" {
		return s
	}

	return f.Path + ":" + s
}
