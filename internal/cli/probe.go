package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkdrive-dev/mkdrive/pkg/model"
)

type probeCmd struct{}

func (c *probeCmd) name() string { return "probe" }

func (c *probeCmd) register() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Print the host facts option resolution runs against",
		Args:  cobra.NoArgs,
	}
}

func (c *probeCmd) run(ctx context.Context, args []string) error {
	deps, err := wireDeps(ctx, false)
	if err != nil {
		return err
	}

	printProfile(os.Stdout, deps.Profile, deps.BuildRoot)
	return nil
}

func printProfile(w io.Writer, p model.HostProfile, buildRoot string) {
	fmt.Fprintf(w, "distro:            %s\n", valueOrNone(p.DistroID))
	fmt.Fprintf(w, "version:           %s\n", valueOrNone(p.DistroVersionID))
	fmt.Fprintf(w, "id-like:           %s\n", valueOrNone(strings.Join(p.DistroIDLike, " ")))
	fmt.Fprintf(w, "sysvinit path:     %s\n", valueOrNone(p.SysvinitPath))
	fmt.Fprintf(w, "root prefix:       %s\n", valueOrNone(p.RootPrefix))
	fmt.Fprintf(w, "multiarch triplet: %s\n", valueOrNone(p.MultiarchTriplet))
	fmt.Fprintf(w, "bpftool:           %v\n", p.HasBpftool)
	fmt.Fprintf(w, "build root:        %s\n", buildRoot)
}

func valueOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
