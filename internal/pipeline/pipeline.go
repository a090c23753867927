// Package pipeline drives the external build system: configure, build,
// test, install, then addon signing. Steps run strictly in sequence and
// the first failure aborts the rest.
package pipeline

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/mkdrive-dev/mkdrive/internal/config"
	"github.com/mkdrive-dev/mkdrive/internal/localexec"
	"github.com/mkdrive-dev/mkdrive/internal/resolver"
	"github.com/mkdrive-dev/mkdrive/pkg/logger"
	"github.com/mkdrive-dev/mkdrive/pkg/model"
)

type StepName string

const (
	StepConfigure StepName = "configure"
	StepBuild     StepName = "build"
	StepTest      StepName = "test"
	StepInstall   StepName = "install"
	StepSign      StepName = "sign"
)

// StepError tags a failure with the pipeline step it came from, instead
// of bubbling up a bare process exit status.
type StepError struct {
	Step StepName
	Err  error
}

func (e StepError) Error() string {
	return fmt.Sprintf("step %s: %v", e.Step, e.Err)
}

func (e StepError) Unwrap() error {
	return e.Err
}

type Pipeline struct {
	execer    localexec.Execer
	clock     clockwork.Clock
	cfg       config.Config
	buildRoot string

	// Force reruns the generator even when the build directory is
	// already configured.
	Force bool
}

func New(execer localexec.Execer, clock clockwork.Clock, cfg config.Config, buildRoot string) *Pipeline {
	return &Pipeline{
		execer:    execer,
		clock:     clock,
		cfg:       cfg,
		buildRoot: buildRoot,
	}
}

// Run executes the whole pipeline. Positional targets are forwarded to
// the build executor untouched.
func (p *Pipeline) Run(ctx context.Context, profile model.HostProfile, targets []string) error {
	if err := p.Configure(ctx, profile); err != nil {
		return err
	}
	if err := p.Build(ctx, targets); err != nil {
		return err
	}
	if err := p.Test(ctx); err != nil {
		return err
	}
	if err := p.Install(ctx); err != nil {
		return err
	}
	return p.Sign(ctx)
}

// Configure runs the generator unless the build directory already
// carries a build description. Configure is the expensive step; the
// marker check keeps repeat invocations cheap.
func (p *Pipeline) Configure(ctx context.Context, profile model.HostProfile) error {
	if !p.Force && !resolver.NeedsConfigure(p.buildRoot) {
		logger.Get(ctx).Verbosef("%s already configured, skipping generator", p.buildRoot)
		return nil
	}

	set := resolver.BuildOptionSet(profile, p.cfg)
	l := logger.Get(ctx)
	for _, o := range set.Pairs() {
		l.Debugf("option %s=%s", o.Name, o.Value.MesonString())
	}

	argv := append([]string{"meson", "setup", p.buildRoot}, resolver.Finalize(set)...)
	return p.runStep(ctx, StepConfigure, model.NewCmd(argv...))
}

func (p *Pipeline) Build(ctx context.Context, targets []string) error {
	argv := append([]string{"ninja", "-C", p.buildRoot}, targets...)
	return p.runStep(ctx, StepBuild, model.NewCmd(argv...))
}

// Test runs the suite when WITH_TESTS is set. Sanitized builds are slow,
// so they get a larger timeout multiplier, and the sanitizer runtime
// options are forwarded from their image-builder spellings.
func (p *Pipeline) Test(ctx context.Context) error {
	if !p.cfg.WithTests {
		logger.Get(ctx).Verbosef("test step disabled, skipping")
		return nil
	}

	multiplier := 1
	if p.cfg.SanitizersActive() {
		multiplier = 3
	}

	cmd := model.NewCmd(
		"meson", "test",
		"-C", p.buildRoot,
		"--print-errorlogs",
		fmt.Sprintf("--timeout-multiplier=%d", multiplier),
	)
	if p.cfg.SanitizersActive() {
		cmd = cmd.WithEnv(
			"ASAN_OPTIONS="+p.cfg.AsanOptions,
			"UBSAN_OPTIONS="+p.cfg.UbsanOptions,
		)
	}

	return p.runStep(ctx, StepTest, cmd)
}

func (p *Pipeline) Install(ctx context.Context) error {
	cmd := model.NewCmd("meson", "install", "-C", p.buildRoot, "--quiet", "--no-rebuild")
	if p.cfg.DestDir != "" {
		cmd = cmd.WithEnv("DESTDIR=" + p.cfg.DestDir)
	}
	return p.runStep(ctx, StepInstall, cmd)
}

func (p *Pipeline) runStep(ctx context.Context, name StepName, cmd model.Cmd) error {
	l := logger.Get(ctx)
	start := p.clock.Now()

	if err := localexec.OneShotToLogger(ctx, p.execer, cmd); err != nil {
		l.Errorf("%s failed after %s", logger.Red(l).Sprint(string(name)), p.clock.Since(start))
		return StepError{Step: name, Err: err}
	}

	l.Infof("%s finished in %s", logger.Green(l).Sprint(string(name)), p.clock.Since(start))
	return nil
}
