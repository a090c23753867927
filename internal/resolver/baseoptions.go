package resolver

import (
	"github.com/mkdrive-dev/mkdrive/internal/config"
	"github.com/mkdrive-dev/mkdrive/pkg/model"
)

// The fixed base table. Every entry is hard-coded; only the trailing
// dynamic block depends on the host. Order is part of the contract:
// generator invocations must be byte-for-byte reproducible across runs
// on the same host.
func appendBaseOptions(s *model.OptionSet, profile model.HostProfile, cfg config.Config) {
	str := model.StringValue
	boolean := model.BoolValue
	enabled := model.FeatureValue(model.Enabled)
	disabled := model.FeatureValue(model.Disabled)

	// Build mode and documentation.
	s.Append("mode", str("developer"))
	s.Append("werror", boolean(false))
	s.Append("man", disabled)
	s.Append("html", disabled)
	s.Append("translations", boolean(false))

	// Test machinery. The image is a throwaway development environment,
	// so the unsafe test set is acceptable.
	s.Append("tests", str("unsafe"))
	s.Append("install-tests", boolean(true))
	s.Append("fuzz-tests", boolean(false))
	s.Append("create-log-dirs", boolean(false))

	// Core components.
	s.Append("utmp", boolean(true))
	s.Append("hibernate", boolean(true))
	s.Append("ldconfig", boolean(true))
	s.Append("resolve", boolean(true))
	s.Append("efi", boolean(true))
	s.Append("environment-d", boolean(true))
	s.Append("binfmt", boolean(true))
	s.Append("repart", boolean(true))
	s.Append("sysupdate", boolean(true))
	s.Append("coredump", boolean(true))
	s.Append("pstore", boolean(true))
	s.Append("oomd", boolean(true))
	s.Append("logind", boolean(true))
	s.Append("hostnamed", boolean(true))
	s.Append("localed", boolean(true))
	s.Append("machined", boolean(true))
	s.Append("portabled", boolean(true))
	s.Append("sysext", boolean(true))
	s.Append("userdb", boolean(true))
	s.Append("homed", enabled)
	s.Append("networkd", boolean(true))
	s.Append("timedated", boolean(true))
	s.Append("timesyncd", boolean(true))
	s.Append("remote", enabled)
	s.Append("importd", enabled)
	s.Append("firstboot", boolean(true))
	s.Append("randomseed", boolean(true))
	s.Append("backlight", boolean(true))
	s.Append("vconsole", boolean(true))
	s.Append("quotacheck", boolean(true))
	s.Append("sysusers", boolean(true))
	s.Append("tmpfiles", boolean(true))
	s.Append("hwdb", boolean(true))
	s.Append("rfkill", boolean(true))
	s.Append("xdg-autostart", boolean(true))
	s.Append("kernel-install", boolean(true))
	s.Append("analyze", boolean(true))
	s.Append("first-boot-full-preset", boolean(true))

	// NSS modules.
	s.Append("nss-myhostname", boolean(true))
	s.Append("nss-mymachines", enabled)
	s.Append("nss-resolve", enabled)
	s.Append("nss-systemd", boolean(true))

	// Optional library dependencies.
	s.Append("acl", enabled)
	s.Append("apparmor", enabled)
	s.Append("audit", enabled)
	s.Append("blkid", enabled)
	s.Append("fdisk", enabled)
	s.Append("kmod", enabled)
	s.Append("pam", enabled)
	s.Append("pwquality", enabled)
	s.Append("microhttpd", enabled)
	s.Append("libcryptsetup", enabled)
	s.Append("libcurl", enabled)
	s.Append("idn2", enabled)
	s.Append("libidn", disabled)
	s.Append("libiptc", enabled)
	s.Append("qrencode", enabled)
	s.Append("gcrypt", enabled)
	s.Append("gnutls", enabled)
	s.Append("openssl", enabled)
	s.Append("p11kit", enabled)
	s.Append("libfido2", enabled)
	s.Append("tpm2", enabled)
	s.Append("elfutils", enabled)
	s.Append("zlib", enabled)
	s.Append("bzip2", enabled)
	s.Append("xz", enabled)
	s.Append("lz4", enabled)
	s.Append("zstd", enabled)
	s.Append("seccomp", enabled)
	s.Append("selinux", enabled)
	s.Append("smack", boolean(true))
	s.Append("polkit", enabled)
	s.Append("ima", boolean(true))

	// Hardening and policy defaults for the image.
	s.Append("default-dnssec", str("no"))
	s.Append("fallback-hostname", str("mkdrive"))
	s.Append("status-unit-format-default", str("name"))
	s.Append("default-timeout-sec", model.IntValue(45))
	s.Append("default-user-timeout-sec", model.IntValue(45))
	s.Append("dev-kvm-mode", str("0666"))
	s.Append("group-render-mode", str("0666"))

	// BPF tooling is only worth enabling when the host actually ships
	// a bpftool build for its kernel.
	if profile.HasBpftool {
		s.Append("bpf-framework", enabled)
	} else {
		s.Append("bpf-framework", model.FeatureValue(model.Auto))
	}

	// Dynamic entries: host facts and environment pass-throughs.
	s.Append("sysvinit-path", str(profile.SysvinitPath))
	s.Append("rootprefix", str(profile.RootPrefix))
	s.Append("version-tag", str(cfg.VersionTag))
	s.Append("b_sanitize", str(cfg.Sanitizers))
	s.Append("slow-tests", boolean(cfg.SlowTests))
	s.Append("ukify", boolean(wantUkify(profile)))
}

// The stub generator needs a python newer than the one the legacy
// enterprise release ships.
func wantUkify(profile model.HostProfile) bool {
	return !(profile.DistroID == "centos" && profile.DistroVersionID == "8")
}
