package model

import "strings"

// HostProfile is a read-only snapshot of the facts about the build host
// that option resolution depends on. It is assembled once, before any
// option is derived, and never mutated afterwards.
type HostProfile struct {
	// From os-release. Empty when the file or key is missing.
	DistroID        string
	DistroVersionID string
	DistroIDLike    []string

	// Canonical path of the init-script directory; empty when it does
	// not exist (in non-strict mode).
	SysvinitPath string

	// Distribution root prefix derived from the init binary's real
	// path; empty when the binary does not resolve.
	RootPrefix string

	// Output of the multiarch query tool; empty when the tool is absent.
	MultiarchTriplet string

	HasBpftool bool
}

func (p HostProfile) IsDebianLike() bool {
	if p.DistroID == "debian" || strings.Contains(p.DistroID, "debian") {
		return true
	}
	for _, like := range p.DistroIDLike {
		if strings.Contains(like, "debian") {
			return true
		}
	}
	return false
}

func (p HostProfile) IsFedora() bool {
	return p.DistroID == "fedora"
}

func (p HostProfile) IsOpenSUSE() bool {
	return strings.HasPrefix(p.DistroID, "opensuse")
}
