package model

import "fmt"

// DriverBuild is the version stamp of the running mkdrive binary.
type DriverBuild struct {
	Version string
	Date    string
	Dev     bool
}

func (b DriverBuild) Empty() bool {
	return b == DriverBuild{}
}

func (b DriverBuild) HumanBuildStamp() string {
	suffix := ""
	if b.Dev {
		suffix = "-dev"
	}
	return fmt.Sprintf("v%s%s, built %s", b.Version, suffix, b.Date)
}
