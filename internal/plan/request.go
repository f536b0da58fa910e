package plan

import (
	"fmt"
	"strings"

	"stringenum-generator/internal/enumspec"
	"stringenum-generator/internal/mapping"
	"stringenum-generator/stringenum"
)

// FlagOptions are the settings given on the command line. They apply to
// requests created from --type only.
type FlagOptions struct {
	Mode           enumspec.Mode
	Case           stringenum.CaseSensitivity
	Tier           stringenum.Tier
	AllowShadowing bool
	ParseFunc      string
}

// RequestsFromFile returns one request per entry of f, in file order.
func RequestsFromFile(f *mapping.File) []Request {
	if f == nil {
		return nil
	}

	reqs := make([]Request, 0, len(f.Enums))

	for _, e := range f.Enums {
		origin := fmt.Sprintf("line %d", e.Line)
		if f.Path != "" {
			origin = fmt.Sprintf("%s:%d", f.Path, e.Line)
		}

		reqs = append(reqs, Request{
			Type:    e.Type,
			Package: e.Package,
			Options: enumspec.Options{
				Mode:           e.Mode,
				Case:           e.Case,
				AllowShadowing: e.AllowShadowing,
			},
			Tier:      e.Tier,
			ParseFunc: e.ParseFunc,
			Labels:    e.Labels,
			Origin:    origin,
			File:      f.Path,
		})
	}

	return reqs
}

// RequestsFromFlags returns one request per type name. Names may be given
// comma separated; blanks are skipped.
func RequestsFromFlags(typeNames []string, opts FlagOptions) []Request {
	var reqs []Request

	for _, arg := range typeNames {
		for name := range strings.SplitSeq(arg, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}

			reqs = append(reqs, Request{
				Type: name,
				Options: enumspec.Options{
					Mode:           opts.Mode,
					Case:           opts.Case,
					AllowShadowing: opts.AllowShadowing,
				},
				Tier:      opts.Tier,
				ParseFunc: opts.ParseFunc,
				Origin:    "--type=" + name,
			})
		}
	}

	return reqs
}
