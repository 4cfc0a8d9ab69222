package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cabbabbage/vibble/build-tools/pkg/launcher"
)

var ctestCmd = &cobra.Command{
	Use:   "ctest [--ci] [args...]",
	Short: "Runs CTest in the build directory (Windows only)",
	Long: `Runs "ctest --build-config RelWithDebInfo --output-on-failure" inside the build
directory. The bootstrap step has to create that directory first. Extra arguments
are appended to the ctest command line.

On other platforms the command fails, except in CI environments (or with --ci)
where it prints a notice and exits successfully.`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, l, err := start(cmd, "ctest", args, launcher.TestRunHint)
		if err != nil {
			return err
		}
		if s == nil {
			exitCode = launcher.ExitSuccess
			return nil
		}

		t := &launcher.TestRun{
			Launcher:    l,
			Root:        s.root,
			BuildDir:    s.cfg.Tests.BuildDir,
			Binary:      s.cfg.Tests.Binary,
			BuildConfig: s.cfg.Tests.BuildConfig,
		}

		code, err := t.Run(s.ctx, args)
		if err != nil {
			return &toolError{tool: "ctest", err: err}
		}

		exitCode = code
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ctestCmd)
}
