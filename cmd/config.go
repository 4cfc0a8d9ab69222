package cmd

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cabbabbage/vibble/build-tools/pkg"
	"github.com/cabbabbage/vibble/build-tools/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Prints the effective configuration",
	Long: `Prints the configuration the helpers would use as YAML. Values come from the
defaults, the optional tools.toml in the project root and VIBBLE_* environment
variables (i.e. VIBBLE_TESTS_BUILD_DIR).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}

		cfg, err := config.Load(root)
		if err != nil {
			return err
		}
		noColor = cfg.Log.NoColor

		pkg.Console{Out: cmd.ErrOrStderr(), NoColor: cfg.Log.NoColor}.PrintTask("Project root: " + root)
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return eris.Wrap(err, "failed to encode configuration")
		}

		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
