// Package config snapshots the environment variables the driver honors.
//
// The snapshot is taken once at startup and passed around explicitly;
// nothing below the CLI reads the process environment directly.
package config

import "strings"

// SanitizerNone is the sentinel the generator expects when no sanitizer
// is requested.
const SanitizerNone = "none"

type Config struct {
	// BUILDDIR: explicit build root, overrides <cwd>/build.
	BuildDir string

	// VERSION_TAG: version string baked into the built project.
	VersionTag string

	// SANITIZERS: comma-separated sanitizer list, e.g. "address,undefined".
	Sanitizers string

	// SLOW_TESTS: enable the long-running subset of the test suite.
	SlowTests bool

	// WITH_TESTS: run the test step at all.
	WithTests bool

	// DESTDIR: install root; also where boot-loader addons are placed.
	DestDir string

	// MKOSI_ASAN_OPTIONS / MKOSI_UBSAN_OPTIONS: forwarded into the test
	// environment as ASAN_OPTIONS / UBSAN_OPTIONS when sanitizers are on.
	AsanOptions  string
	UbsanOptions string
}

// FromEnviron builds a Config from "key=value" pairs as returned by
// os.Environ. Later entries win, matching stdlib semantics.
func FromEnviron(environ []string) Config {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		i := strings.IndexByte(kv, '=')
		if i < 0 {
			continue
		}
		env[kv[:i]] = kv[i+1:]
	}

	return Config{
		BuildDir:     env["BUILDDIR"],
		VersionTag:   env["VERSION_TAG"],
		Sanitizers:   defaultString(env["SANITIZERS"], SanitizerNone),
		SlowTests:    truthy(env["SLOW_TESTS"]),
		WithTests:    truthy(env["WITH_TESTS"]),
		DestDir:      env["DESTDIR"],
		AsanOptions:  env["MKOSI_ASAN_OPTIONS"],
		UbsanOptions: env["MKOSI_UBSAN_OPTIONS"],
	}
}

// SanitizersActive reports whether any sanitizer is requested.
func (c Config) SanitizersActive() bool {
	return c.Sanitizers != "" && c.Sanitizers != SanitizerNone
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func truthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
