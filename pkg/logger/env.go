package logger

import (
	"strings"
)

// PrepareEnv returns a set of strings in the form of "key=value"
// based on a provided set of strings in the same format with additional
// entries to improve subprocess log output.
func PrepareEnv(l Logger, env []string) []string {
	supportsColor := l.SupportsColor()
	hasLines := false
	hasColumns := false
	hasForceColor := false
	hasNinjaStatus := false

	for _, e := range env {
		// LINES and COLUMNS are posix standards.
		// https://pubs.opengroup.org/onlinepubs/9699919799/basedefs/V1_chap08.html
		hasLines = hasLines || strings.HasPrefix(e, "LINES=")
		hasColumns = hasColumns || strings.HasPrefix(e, "COLUMNS=")

		hasForceColor = hasForceColor || strings.HasPrefix(e, "FORCE_COLOR=")

		// ninja's default status line uses terminal escapes that turn
		// into noise when captured by a log pipe
		hasNinjaStatus = hasNinjaStatus || strings.HasPrefix(e, "NINJA_STATUS=")
	}

	if !hasLines {
		env = append(env, "LINES=24")
	}
	if !hasColumns {
		env = append(env, "COLUMNS=80")
	}
	if !hasForceColor && supportsColor {
		env = append(env, "FORCE_COLOR=1")
	}
	if !hasNinjaStatus {
		env = append(env, "NINJA_STATUS=[%f/%t] ")
	}
	return env
}
