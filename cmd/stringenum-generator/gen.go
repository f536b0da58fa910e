package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	genOpts    genOptions
	saveConfig bool
)

var genCmd = &cobra.Command{
	Use:   "gen [packages]",
	Short: "Generate codecs for enums",
	Long: `Generate a <type>_stringenum.go file for every requested enum.

Enums are requested with --type or by the enums of the declaration file.
When both name a type, the declaration file decides its settings; the
flags shape --type requests only. Packages default to the current one.

With --save-config the resolved enums, their settings and every variant
string are written to the declaration file (--config), replacing it.

Examples:
  stringenum-generator gen --type=Type
  stringenum-generator gen ./internal/... --type=Move --mode=custom
  stringenum-generator gen --type=Type,Region --save-config
  //go:generate go run stringenum-generator/cmd/stringenum-generator gen --type=Direction`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPipeline(cmd, args, genOpts)

		res, err := p.generate()
		if !saveConfig || res == nil || res.plan == nil {
			return err
		}

		return errors.Join(err, p.saveConfig(res))
	},
}

func init() {
	genOpts.bind(genCmd)
	genCmd.Flags().BoolVar(&saveConfig, "save-config", false, "write the resolved enums to the declaration file")
	rootCmd.AddCommand(genCmd)
}
