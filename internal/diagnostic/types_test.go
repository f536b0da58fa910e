package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "message only",
			diag: Diagnostic{Message: "no enums requested"},
			want: "no enums requested",
		},
		{
			name: "enum and code",
			diag: Diagnostic{Code: CodeUnknownType, Message: "type not found", Enum: "Typ"},
			want: "[Typ] [unknown_type] type not found",
		},
		{
			name: "full",
			diag: Diagnostic{
				Code:        CodeUnknownVariant,
				Message:     "no such variant",
				Enum:        "Type",
				Variant:     "Fyre",
				Pos:         "stringenum.yaml:7:9",
				Suggestions: []string{"Fire"},
			},
			want: "stringenum.yaml:7:9: [Type.Fyre] [unknown_variant] no such variant (did you mean Fire?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo(CodeDuplicateValue, "skipped", "Type", "Flame")
	d.AddWarning(CodeShadowedString, "never matched", "Type", "Water")
	assert.False(t, d.HasErrors())

	d.AddError("missing_canonical_string", "no string", "Type", "Grass")
	d.AddError(CodeUnknownType, "not found", "Move", "")

	require.True(t, d.HasErrors())
	assert.Len(t, d.Infos, 1)
	assert.Len(t, d.Warnings, 1)
	assert.EqualError(t, d.Error(),
		"[Type.Grass] [missing_canonical_string] no string; [Move] [unknown_type] not found")

	forType := d.ForEnum("Type")
	assert.Len(t, forType.Errors, 1)
	assert.Len(t, forType.Warnings, 1)
	assert.Len(t, forType.Infos, 1)

	var other Diagnostics
	other.Merge(d)
	assert.Len(t, other.Errors, 2)
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
