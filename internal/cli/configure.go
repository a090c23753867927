package cli

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/mkdrive-dev/mkdrive/internal/pipeline"
)

type configureCmd struct {
	force            bool
	strictInitLayout bool
}

func (c *configureCmd) name() string { return "configure" }

func (c *configureCmd) register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Run only the generator step",
		Long: `
Resolves build options from the host and runs the build-system
generator. Does nothing when the build directory is already configured;
pass --force to reconfigure anyway.
`,
		Args: cobra.NoArgs,
	}

	cmd.Flags().BoolVar(&c.force, "force", false, "Rerun the generator even if already configured")
	addStrictInitLayoutFlag(cmd, &c.strictInitLayout)

	return cmd
}

func (c *configureCmd) run(ctx context.Context, args []string) error {
	deps, err := wireDeps(ctx, c.strictInitLayout)
	if err != nil {
		return err
	}

	p := pipeline.New(deps.Execer, clockwork.NewRealClock(), deps.Cfg, deps.BuildRoot)
	p.Force = c.force
	return p.Configure(ctx, deps.Profile)
}
