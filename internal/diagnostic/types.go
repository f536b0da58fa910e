package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"stringenum-generator/internal/common"
)

// Diagnostic codes not produced by enumspec.
const (
	CodeUnknownType       = "unknown_type"
	CodeUnknownVariant    = "unknown_variant"
	CodeUnknownDirective  = "unknown_directive"
	CodeDuplicateValue    = "duplicate_value"
	CodeShadowedString    = "shadowed_string"
	CodeMissingString     = "missing_string_method"
	CodeMissingParseFunc  = "missing_parse_func"
	CodeBadParseFunc      = "bad_parse_func"
	CodeConflictingMethod = "conflicting_method"
	CodeDuplicateRequest  = "duplicate_request"
)

// Diagnostics holds all diagnostic information from resolution.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Enum names the enum type this relates to (if any).
	Enum string
	// Variant names the variant this relates to (if any).
	Variant string
	// Pos is a file:line:col position (if known).
	Pos string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add appends d to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, enum, variant string) {
	d.Add(Diagnostic{Severity: DiagnosticError, Code: code, Message: message, Enum: enum, Variant: variant})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, enum, variant string) {
	d.Add(Diagnostic{Severity: DiagnosticWarning, Code: code, Message: message, Enum: enum, Variant: variant})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, enum, variant string) {
	d.Add(Diagnostic{Severity: DiagnosticInfo, Code: code, Message: message, Enum: enum, Variant: variant})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// ForEnum returns the diagnostics that mention enum.
func (d *Diagnostics) ForEnum(enum string) Diagnostics {
	var out Diagnostics

	for _, list := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range list {
			if diag.Enum == enum {
				out.Add(diag)
			}
		}
	}

	return out
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string

	if d.Pos != "" {
		prefix = append(prefix, d.Pos+":")
	}

	switch {
	case d.Enum != "" && d.Variant != "":
		prefix = append(prefix, "["+d.Enum+"."+d.Variant+"]")
	case d.Enum != "":
		prefix = append(prefix, "["+d.Enum+"]")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + " " + msg
	}

	return msg
}
