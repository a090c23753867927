package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jonboulle/clockwork"
	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mkdrive-dev/mkdrive/internal/config"
	"github.com/mkdrive-dev/mkdrive/internal/hostinfo"
	"github.com/mkdrive-dev/mkdrive/internal/localexec"
	"github.com/mkdrive-dev/mkdrive/internal/pipeline"
	"github.com/mkdrive-dev/mkdrive/internal/resolver"
	"github.com/mkdrive-dev/mkdrive/pkg/model"
)

type buildCmd struct {
	strictInitLayout bool
}

func (c *buildCmd) name() string { return "build" }

func (c *buildCmd) register() *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "build [<build targets>]",
		DisableFlagsInUseLine: true,
		Short:                 "Run the full pipeline: configure, build, test, install, sign",
		Long: `
Runs the whole build pipeline against the external build system.

Positional arguments are forwarded to the build executor as its target
list. Behavior is controlled by the image builder's environment:
BUILDDIR, VERSION_TAG, SANITIZERS, SLOW_TESTS, WITH_TESTS and DESTDIR.

The pipeline stops at the first failing step.
`,
	}

	addStrictInitLayoutFlag(cmd, &c.strictInitLayout)

	return cmd
}

func (c *buildCmd) run(ctx context.Context, args []string) error {
	deps, err := wireDeps(ctx, c.strictInitLayout)
	if err != nil {
		return err
	}

	p := pipeline.New(deps.Execer, clockwork.NewRealClock(), deps.Cfg, deps.BuildRoot)
	err = p.Run(ctx, deps.Profile, args)
	if err == nil {
		_, _ = fmt.Fprintln(colorable.NewColorableStdout(),
			color.GreenString("SUCCESS. Build pipeline completed."))
	}
	return err
}

func addStrictInitLayoutFlag(cmd *cobra.Command, v *bool) {
	cmd.Flags().BoolVar(v, "strict-init-layout", false,
		"Fail when the init-script directory cannot be resolved instead of configuring without it")
}

// deps is everything a command needs that depends on the host
// environment: the config snapshot, the resolved build root, the process
// execer and the probed host profile.
type deps struct {
	Cfg       config.Config
	BuildRoot string
	Execer    localexec.Execer
	Profile   model.HostProfile
}

func wireDeps(ctx context.Context, strictInitLayout bool) (deps, error) {
	cfg := config.FromEnviron(os.Environ())

	cwd, err := os.Getwd()
	if err != nil {
		return deps{}, errors.Wrap(err, "getting working directory")
	}
	buildRoot := resolver.ResolveBuildRoot(cfg.BuildDir, cwd)

	execer := localexec.NewProcessExecer(localexec.DefaultEnv(buildRoot, cfg.DestDir))

	prober := hostinfo.NewProber("/", execer)
	prober.Strict = strictInitLayout
	profile, err := prober.Probe(ctx)
	if err != nil {
		return deps{}, errors.Wrap(err, "probing host")
	}

	return deps{
		Cfg:       cfg,
		BuildRoot: buildRoot,
		Execer:    execer,
		Profile:   profile,
	}, nil
}
