package resolver

import "github.com/mkdrive-dev/mkdrive/pkg/model"

// Fedora pins system users and groups to its static uid/gid allocation
// policy. The table is reproduced verbatim from that policy, not probed
// from the host, so installs into a fresh image tree come out identical
// to distribution packages.
var fedoraIDOptions = []model.Option{
	{Name: "adm-gid", Value: model.IntValue(4)},
	{Name: "audio-gid", Value: model.IntValue(63)},
	{Name: "cdrom-gid", Value: model.IntValue(11)},
	{Name: "dialout-gid", Value: model.IntValue(18)},
	{Name: "disk-gid", Value: model.IntValue(6)},
	{Name: "input-gid", Value: model.IntValue(104)},
	{Name: "kmem-gid", Value: model.IntValue(9)},
	{Name: "kvm-gid", Value: model.IntValue(36)},
	{Name: "lp-gid", Value: model.IntValue(7)},
	{Name: "render-gid", Value: model.IntValue(105)},
	{Name: "sgx-gid", Value: model.IntValue(106)},
	{Name: "tape-gid", Value: model.IntValue(33)},
	{Name: "tty-gid", Value: model.IntValue(5)},
	{Name: "users-gid", Value: model.IntValue(100)},
	{Name: "utmp-gid", Value: model.IntValue(22)},
	{Name: "video-gid", Value: model.IntValue(39)},
	{Name: "wheel-gid", Value: model.IntValue(10)},
	{Name: "systemd-journal-gid", Value: model.IntValue(190)},
	{Name: "systemd-network-uid", Value: model.IntValue(192)},
	{Name: "systemd-resolve-uid", Value: model.IntValue(193)},
	{Name: "systemd-timesync-uid", Value: model.IntValue(194)},
}

func appendFedoraOptions(s *model.OptionSet, profile model.HostProfile) {
	if !profile.IsFedora() {
		return
	}

	for _, o := range fedoraIDOptions {
		s.Append(o.Name, o.Value)
	}
}
