package main

import (
	"github.com/mkdrive-dev/mkdrive/internal/cli"
	"github.com/mkdrive-dev/mkdrive/pkg/model"
)

// Magic variables set by the release pipeline via ldflags
var version string
var date string

func main() {
	cli.SetDriverInfo(model.DriverBuild{
		Version: version,
		Date:    date,
	})
	cli.Execute()
}
