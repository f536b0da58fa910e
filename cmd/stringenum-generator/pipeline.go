package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stringenum-generator/internal/analyze"
	"stringenum-generator/internal/diagnostic"
	"stringenum-generator/internal/enumspec"
	"stringenum-generator/internal/gen"
	"stringenum-generator/internal/mapping"
	"stringenum-generator/internal/plan"
	"stringenum-generator/stringenum"
)

// genOptions are the flags shared by gen, check and watch.
type genOptions struct {
	types          []string
	mode           string
	caseMode       string
	tier           string
	output         string
	parseFunc      string
	allowShadowing bool
	runtime        string
}

func (o *genOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSliceVarP(&o.types, "type", "t", nil, "enum types to generate, comma separated")
	f.StringVar(&o.mode, "mode", "labeled", "labeled or custom")
	f.StringVar(&o.caseMode, "case", "sensitive", "sensitive or insensitive parsing")
	f.StringVar(&o.tier, "tier", "full", "decode error detail: full, restricted or none")
	f.StringVarP(&o.output, "output", "o", "", "output directory (default: each enum's package)")
	f.StringVar(&o.parseFunc, "parse-func", "", "custom-mode parse func (default: Parse<Type>)")
	f.BoolVar(&o.allowShadowing, "allow-shadowing", false, "let earlier variants shadow duplicate strings")
	f.StringVar(&o.runtime, "runtime", gen.DefaultRuntimePackage, "import path of the runtime package")
}

// flagOptions parses the string flags with the enums' own parsers.
func (o *genOptions) flagOptions() (plan.FlagOptions, error) {
	mode, err := enumspec.ParseMode(o.mode)
	if err != nil {
		return plan.FlagOptions{}, fmt.Errorf("--mode: %w", err)
	}

	caseMode, err := stringenum.ParseCaseSensitivity(o.caseMode)
	if err != nil {
		return plan.FlagOptions{}, fmt.Errorf("--case: %w", err)
	}

	tier, err := stringenum.ParseTier(o.tier)
	if err != nil {
		return plan.FlagOptions{}, fmt.Errorf("--tier: %w", err)
	}

	return plan.FlagOptions{
		Mode:           mode,
		Case:           caseMode,
		Tier:           tier,
		AllowShadowing: o.allowShadowing,
		ParseFunc:      o.parseFunc,
	}, nil
}

// pipeline runs analysis, resolution and generation for one invocation.
type pipeline struct {
	// dir is where patterns and relative paths are resolved; empty means
	// the current directory.
	dir      string
	patterns []string
	// configPath is the declaration file. It must exist when configRequired.
	configPath     string
	configRequired bool
	opts           genOptions
	log            *zap.Logger
}

func newPipeline(cmd *cobra.Command, args []string, opts genOptions) *pipeline {
	if len(args) == 0 {
		args = []string{"."}
	}

	return &pipeline{
		patterns:       args,
		configPath:     cfgFile,
		configRequired: cmd.Flags().Changed("config"),
		opts:           opts,
		log:            logger,
	}
}

// resolution is the outcome of resolve. Plan may be set alongside an error
// when only some declarations failed.
type resolution struct {
	graph *analyze.TypeGraph
	plan  *plan.Plan
	// configPath is the declaration file that was read, if any.
	configPath string
	// output is the output directory every enum was resolved with.
	output string
	// diags holds the analysis and resolution diagnostics together.
	diags diagnostic.Diagnostics
}

// loadConfig reads the declaration file. A missing default file is not an
// error.
func (p *pipeline) loadConfig() (*mapping.File, error) {
	if p.configPath == "" {
		return nil, nil
	}

	if _, err := os.Stat(p.configPath); errors.Is(err, os.ErrNotExist) && !p.configRequired {
		p.log.Debug("no declaration file", zap.String("path", p.configPath))
		return nil, nil
	}

	f, err := mapping.LoadFile(p.configPath)
	if err != nil {
		return nil, err
	}

	diags := mapping.Validate(f)
	p.report(*diags)

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid declaration file %s: %w", p.configPath, err)
	}

	return f, nil
}

func (p *pipeline) resolve() (*resolution, error) {
	f, err := p.loadConfig()
	if err != nil {
		return nil, err
	}

	flags, err := p.opts.flagOptions()
	if err != nil {
		return nil, err
	}

	reqs := append(plan.RequestsFromFile(f), plan.RequestsFromFlags(p.opts.types, flags)...)
	if len(reqs) == 0 {
		return nil, fmt.Errorf("nothing to generate: pass --type or declare enums in %s", mapping.DefaultFileName)
	}

	analyzer := analyze.NewAnalyzer()
	analyzer.Dir = p.dir

	if _, err := analyzer.LoadPackages(p.patterns...); err != nil {
		return nil, err
	}

	cliPackages := slices.Clone(analyzer.Graph().Order)

	// Packages named in the file are loaded one by one so each pattern
	// maps to what it matched.
	var loaded []string

	for _, req := range reqs {
		if req.Package == "" || slices.Contains(loaded, req.Package) {
			continue
		}

		loaded = append(loaded, req.Package)

		if _, err := analyzer.LoadPackages(req.Package); err != nil {
			return nil, err
		}
	}

	graph := analyzer.Graph()

	cfg := plan.ResolutionConfig{Packages: cliPackages, Output: p.opts.output}
	if cfg.Output == "" && f != nil {
		cfg.Output = f.Output
	}

	res := &resolution{graph: graph, output: cfg.Output}
	if f != nil {
		res.configPath = f.Path
	}

	res.plan, err = plan.NewResolver(graph, reqs, cfg).Resolve()

	res.diags.Merge(graph.Diagnostics)

	if res.plan != nil {
		res.diags.Merge(res.plan.Diagnostics)
	}

	p.report(res.diags)

	return res, err
}

// generate resolves, generates and writes. Files of declarations that
// resolved are written even when others failed.
func (p *pipeline) generate() (*resolution, error) {
	res, resolveErr := p.resolve()
	if res == nil || res.plan == nil {
		return res, resolveErr
	}

	g := gen.NewGenerator(gen.GeneratorConfig{RuntimePackage: p.opts.runtime})

	files, genErr := g.Generate(res.plan)

	written, writeErr := gen.WriteFiles(files)
	p.log.Info("generation finished",
		zap.Int("enums", len(res.plan.Enums)),
		zap.Int("written", written),
		zap.Int("unchanged", len(files)-written))

	return res, errors.Join(resolveErr, genErr, writeErr)
}

// saveConfig writes the resolved enums of res to the declaration file.
func (p *pipeline) saveConfig(res *resolution) error {
	if p.configPath == "" {
		return fmt.Errorf("--save-config needs a declaration file path")
	}

	if err := mapping.WriteFile(res.plan.Declarations(res.output), p.configPath); err != nil {
		return err
	}

	p.log.Info("saved declarations", zap.String("path", p.configPath), zap.Int("enums", len(res.plan.Enums)))

	return nil
}

// stale returns the generated files whose checked-in content differs.
func (p *pipeline) stale(res *resolution) ([]string, error) {
	g := gen.NewGenerator(gen.GeneratorConfig{RuntimePackage: p.opts.runtime})

	files, err := g.Generate(res.plan)

	var out []string

	for _, f := range files {
		old, readErr := os.ReadFile(f.Path())
		if readErr != nil || !bytes.Equal(old, f.Content) {
			out = append(out, f.Path())
		}
	}

	return out, err
}

// report logs diagnostics by severity.
func (p *pipeline) report(diags diagnostic.Diagnostics) {
	for _, d := range diags.Errors {
		p.log.Error(d.String())
	}

	for _, d := range diags.Warnings {
		p.log.Warn(d.String())
	}

	for _, d := range diags.Infos {
		p.log.Debug(d.String())
	}
}
