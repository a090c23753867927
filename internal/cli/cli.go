package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/mkdrive-dev/mkdrive/pkg/logger"
)

var debug bool
var verbose bool

func logLevel() logger.Level {
	if debug {
		return logger.DebugLvl
	} else if verbose {
		return logger.VerboseLvl
	}
	return logger.InfoLvl
}

func Execute() {
	rootCmd := &cobra.Command{
		Use:           "mkdrive",
		Short:         "mkdrive drives the meson build of a system project inside an image build",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addCommand(rootCmd, &buildCmd{})
	addCommand(rootCmd, &configureCmd{})
	addCommand(rootCmd, &optionsCmd{})
	addCommand(rootCmd, &probeCmd{})
	addCommand(rootCmd, &versionCmd{})

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(colorable.NewColorableStderr(), color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

type mkdriveCmd interface {
	name() string
	register() *cobra.Command
	run(ctx context.Context, args []string) error
}

func addCommand(parent *cobra.Command, child mkdriveCmd) {
	cobraChild := child.register()
	cobraChild.RunE = func(_ *cobra.Command, args []string) error {
		l := logger.NewLogger(logLevel(), os.Stdout)
		l.Debugf("mkdrive %s", child.name())
		ctx := logger.WithLogger(context.Background(), l)
		return child.run(ctx, args)
	}

	parent.AddCommand(cobraChild)
}
