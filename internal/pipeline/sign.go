package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/mkdrive-dev/mkdrive/internal/ospath"
	"github.com/mkdrive-dev/mkdrive/pkg/logger"
	"github.com/mkdrive-dev/mkdrive/pkg/model"
)

const (
	signingKey  = "mkosi.key"
	signingCert = "mkosi.crt"

	goodAddonName = "good.addon.efi"
	badAddonName  = "bad.addon.efi"

	// A recognizable payload so boot-time tests can verify the addon
	// was actually picked up.
	addonCmdline = "this.is.a.test.addon=1"
)

// Sign produces one properly signed boot-loader addon and one
// intentionally unsigned counterpart in the installed tree, so the boot
// loader's signature enforcement can be exercised both ways.
func (p *Pipeline) Sign(ctx context.Context) error {
	l := logger.Get(ctx)

	if p.cfg.DestDir == "" {
		l.Verbosef("no install root, skipping addon signing")
		return nil
	}

	addonsDir, ok := resolveAddonsDir(p.cfg.DestDir)
	if !ok {
		l.Verbosef("no boot-loader directory under %s, skipping addon signing", p.cfg.DestDir)
		return nil
	}

	if err := os.MkdirAll(addonsDir, 0o755); err != nil {
		return StepError{Step: StepSign, Err: errors.Wrap(err, "creating addons dir")}
	}

	good := model.NewCmd(
		"ukify", "build",
		"--secureboot-private-key", signingKey,
		"--secureboot-certificate", signingCert,
		"--cmdline", addonCmdline,
		"--output", filepath.Join(addonsDir, goodAddonName),
	)
	if err := p.runStep(ctx, StepSign, good); err != nil {
		return err
	}

	// Same addon without a signature.
	bad := model.NewCmd(
		"ukify", "build",
		"--cmdline", addonCmdline,
		"--output", filepath.Join(addonsDir, badAddonName),
	)
	return p.runStep(ctx, StepSign, bad)
}

// The boot partition mounts at /boot or /efi depending on the image
// layout; probe in that order.
func resolveAddonsDir(destDir string) (string, bool) {
	for _, loader := range []string{
		filepath.Join(destDir, "boot/loader"),
		filepath.Join(destDir, "efi/loader"),
	} {
		if ospath.IsDir(loader) {
			return filepath.Join(loader, "addons"), true
		}
	}
	return "", false
}
