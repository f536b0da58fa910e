package gen

import "text/template"

// templateData holds all data needed for the codec template.
type templateData struct {
	PackageName string
	RuntimePath string
	// Runtime is the qualifier of the runtime package.
	Runtime string
	Type    string
	// Holder is the wrapper struct of a sum enum, empty for const enums.
	Holder   string
	Labeled  bool
	Variants []variantData
	Case     string
	Tier     string
	// ParseFunc is the custom-mode parse func.
	ParseFunc string
	// Receiver is the type the methods are declared on.
	Receiver string
	// Get reads the enum value from v; Ptr points at it.
	Get      string
	Ptr      string
	Adapters []adapterData
}

// variantData is one entry of a labeled codec table.
type variantData struct {
	Expr string
	// Strings are the quoted canonical string followed by the aliases.
	Strings []string
}

// adapterData describes one encoding method delegating to the runtime.
type adapterData struct {
	Method  string
	Iface   string
	Recv    string
	Params  string
	Results string
	Args    string
}

var codecTemplate = template.Must(template.New("codec").Parse(`// Code generated by stringenum-generator. DO NOT EDIT.

package {{.PackageName}}

import (
	"gopkg.in/yaml.v3"

	"{{.RuntimePath}}"
)

{{if .Labeled -}}
var _{{.Type}}Codec = {{.Runtime}}.MustLabeled("{{.Type}}", []{{.Runtime}}.Variant[{{.Type}}]{
{{- range .Variants}}
	{{$.Runtime}}.V[{{$.Type}}]({{.Expr}}{{range .Strings}}, {{.}}{{end}}),
{{- end}}
}, {{.Runtime}}.WithCase({{.Runtime}}.{{.Case}}), {{.Runtime}}.WithTier({{.Runtime}}.{{.Tier}}))
{{- else -}}
var _{{.Type}}Codec = {{.Runtime}}.NewCustom[{{.Type}}]("{{.Type}}", {{.Type}}.String, {{.ParseFunc}})
{{- end}}
{{- if .Holder}}

// {{.Holder}} holds a {{.Type}} so it can be encoded as a string.
type {{.Holder}} struct{ {{.Type}} }
{{- end}}
{{- if .Labeled}}

// String returns the canonical string of v.
func (v {{.Receiver}}) String() string {
	return _{{.Type}}Codec.Render({{.Get}})
}

// Parse{{.Type}} returns the {{.Type}} whose canonical string or alias matches s.
func Parse{{.Type}}(s string) ({{.Type}}, error) {
	return _{{.Type}}Codec.Parse(s)
}
{{- end}}
{{range .Adapters}}
// {{.Method}} implements {{.Iface}}.
func (v {{.Recv}}) {{.Method}}({{.Params}}) {{.Results}} {
	return {{$.Runtime}}.{{.Method}}[{{$.Type}}](_{{$.Type}}Codec, {{.Args}})
}
{{end}}`))
