package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkdrive-dev/mkdrive/pkg/model"
)

// Version for Go-compiled builds that didn't go through a release
// pipeline. Release binaries get the real version baked in with
// ldflags via SetDriverInfo.
const devVersion = "0.3.0"

var globalDriverInfo model.DriverBuild

func SetDriverInfo(info model.DriverBuild) {
	globalDriverInfo = info
}

func driverInfo() model.DriverBuild {
	info := globalDriverInfo
	if info.Empty() {
		return defaultDriverInfo()
	}
	return info
}

func defaultDriverInfo() model.DriverBuild {
	return model.DriverBuild{
		Version: devVersion,
		Date:    defaultBuildDate(),
		Dev:     true,
	}
}

// Returns a build datestamp in the format 2018-08-30
func defaultBuildDate() string {
	path, err := os.Executable()
	if err != nil {
		return "[unknown]"
	}

	info, err := os.Stat(path)
	if err != nil {
		return "[unknown]"
	}

	return info.ModTime().Format("2006-01-02")
}

type versionCmd struct{}

func (c *versionCmd) name() string { return "version" }

func (c *versionCmd) register() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print mkdrive version",
		Args:  cobra.NoArgs,
	}
}

func (c *versionCmd) run(ctx context.Context, args []string) error {
	fmt.Println(driverInfo().HumanBuildStamp())
	return nil
}
