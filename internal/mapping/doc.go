// Package mapping provides the YAML declaration file: schema, parsing,
// defaults and structural validation.
//
// The file declares which enums to generate and how, so that types without
// directives (or owned by someone else's style rules) can still get a codec.
//
// # Schema Overview
//
//	version: "1"
//	output: ""                       # optional output dir
//	enums:
//	  - type: Type                   # required
//	    package: ./examples/pokemon  # optional package pattern
//	    mode: labeled                # labeled | custom
//	    case: insensitive            # sensitive | insensitive
//	    tier: full                   # full | restricted | none
//	    allow_shadowing: false
//	    parse_func: ParseType        # custom mode only
//	    labels:                      # replaces directives of listed variants
//	      Fire: {string: Fire, alias: [Flame, Blaze]}
//	      Water: Water               # shorthand for {string: Water}
//
// Label values keep their YAML kind, so `string: 1` is reported as an integer
// literal by the attribute parser instead of being silently stringified.
package mapping
