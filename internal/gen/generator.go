package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"stringenum-generator/internal/enumspec"
	"stringenum-generator/internal/plan"
	"stringenum-generator/stringenum"
)

// DefaultRuntimePackage is the import path of the runtime library generated
// code calls into.
const DefaultRuntimePackage = "stringenum-generator/stringenum"

// FileSuffix ends the name of every generated file.
const FileSuffix = "_stringenum.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// RuntimePackage is the import path of the runtime library.
	RuntimePackage string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		RuntimePackage: DefaultRuntimePackage,
	}
}

// Generator generates Go code from a resolved plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.RuntimePackage == "" {
		config.RuntimePackage = DefaultRuntimePackage
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs in.
	Dir string
	// Filename is the name of the file (e.g., "type_stringenum.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the file's full path.
func (f *GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Filename returns the name of the file generated for typeName.
func Filename(typeName string) string {
	return strings.ToLower(typeName) + FileSuffix
}

// Generate generates one file per enum of p.
// A failing enum does not stop the others; all failures are returned joined.
func (g *Generator) Generate(p *plan.Plan) ([]GeneratedFile, error) {
	var (
		files []GeneratedFile
		errs  []error
	)

	for i := range p.Enums {
		e := &p.Enums[i]

		file, err := g.GenerateEnum(e)
		if err != nil {
			errs = append(errs, fmt.Errorf("generating %s: %w", e.ID(), err))
			continue
		}

		files = append(files, *file)
	}

	return files, errors.Join(errs...)
}

// GenerateEnum generates the file of a single enum.
func (g *Generator) GenerateEnum(e *plan.ResolvedEnum) (*GeneratedFile, error) {
	data, err := g.buildTemplateData(e)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := codecTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	filename := Filename(e.Spec.Name)

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		raw := GeneratedFile{Dir: e.OutputDir, Filename: filename, Content: buf.Bytes()}
		if dErr := writeDebugUnformatted(raw); dErr != nil {
			Logger().Warn("writing unformatted sidecar", zap.Error(dErr))
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	Logger().Debug("generated",
		zap.Stringer("type", e.ID()),
		zap.String("file", filename),
		zap.Int("bytes", len(formatted)))

	return &GeneratedFile{
		Dir:      e.OutputDir,
		Filename: filename,
		Content:  formatted,
	}, nil
}

// buildTemplateData constructs the template data from a resolved enum.
func (g *Generator) buildTemplateData(e *plan.ResolvedEnum) (*templateData, error) {
	if e.Spec == nil || e.Package == nil {
		return nil, errors.New("resolved enum needs a spec and a package")
	}

	name := e.Spec.Name

	data := &templateData{
		PackageName: e.Package.Name,
		RuntimePath: g.config.RuntimePackage,
		Runtime:     path.Base(g.config.RuntimePackage),
		Type:        name,
		Labeled:     e.Spec.Mode == enumspec.ModeLabeled,
		ParseFunc:   e.ParseFunc,
		Receiver:    name,
		Get:         "v",
		Ptr:         "v",
	}

	if e.IsSum() {
		data.Holder = name + "Value"
		data.Receiver = data.Holder
		data.Get = "v." + name
		data.Ptr = "&v." + name
	}

	if data.Labeled {
		var err error

		if data.Case, err = caseIdent(e.Spec.Case); err != nil {
			return nil, err
		}

		if data.Tier, err = tierIdent(e.Tier); err != nil {
			return nil, err
		}

		for _, v := range e.Spec.Variants {
			vd := variantData{Expr: v.Name}
			if e.IsSum() {
				vd.Expr += "{}"
			}

			vd.Strings = append(vd.Strings, strconv.Quote(v.Canonical))
			for _, alias := range v.Aliases {
				vd.Strings = append(vd.Strings, strconv.Quote(alias))
			}

			data.Variants = append(data.Variants, vd)
		}
	} else if data.ParseFunc == "" {
		return nil, errors.New("custom mode needs a parse func")
	}

	data.Adapters = adapters(data)

	return data, nil
}

func adapters(d *templateData) []adapterData {
	ptr := "*" + d.Receiver

	return []adapterData{
		{"MarshalText", "encoding.TextMarshaler", d.Receiver, "", "([]byte, error)", d.Get},
		{"UnmarshalText", "encoding.TextUnmarshaler", ptr, "text []byte", "error", "text, " + d.Ptr},
		{"MarshalJSON", "json.Marshaler", d.Receiver, "", "([]byte, error)", d.Get},
		{"UnmarshalJSON", "json.Unmarshaler", ptr, "data []byte", "error", "data, " + d.Ptr},
		{"MarshalYAML", "yaml.Marshaler", d.Receiver, "", "(any, error)", d.Get},
		{"UnmarshalYAML", "yaml.Unmarshaler", ptr, "node *yaml.Node", "error", "node, " + d.Ptr},
	}
}

func caseIdent(c stringenum.CaseSensitivity) (string, error) {
	switch c {
	case stringenum.CaseSensitive:
		return "CaseSensitive", nil
	case stringenum.CaseInsensitive:
		return "CaseInsensitive", nil
	default:
		return "", fmt.Errorf("unsupported case sensitivity %d", int(c))
	}
}

func tierIdent(t stringenum.Tier) (string, error) {
	switch t {
	case stringenum.TierFull:
		return "TierFull", nil
	case stringenum.TierRestricted:
		return "TierRestricted", nil
	case stringenum.TierNone:
		return "TierNone", nil
	default:
		return "", fmt.Errorf("unsupported tier %d", int(t))
	}
}
