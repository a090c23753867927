package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkdrive-dev/mkdrive/internal/resolver"
)

type optionsCmd struct {
	strictInitLayout bool
}

func (c *optionsCmd) name() string { return "options" }

func (c *optionsCmd) register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Print the generator flags that would be used on this host",
		Args:  cobra.NoArgs,
	}

	addStrictInitLayoutFlag(cmd, &c.strictInitLayout)

	return cmd
}

func (c *optionsCmd) run(ctx context.Context, args []string) error {
	deps, err := wireDeps(ctx, c.strictInitLayout)
	if err != nil {
		return err
	}

	flags := resolver.Finalize(resolver.BuildOptionSet(deps.Profile, deps.Cfg))
	for _, flag := range flags {
		fmt.Fprintln(os.Stdout, flag)
	}
	return nil
}
