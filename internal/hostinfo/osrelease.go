package hostinfo

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// osRelease holds the fields of /etc/os-release the driver cares about.
// Missing file or keys leave the zero value; parsing never fails.
type osRelease struct {
	ID        string
	VersionID string
	IDLike    []string
}

func readOSRelease(path string) osRelease {
	f, err := os.Open(path)
	if err != nil {
		return osRelease{}
	}
	defer func() {
		_ = f.Close()
	}()
	return parseOSRelease(f)
}

func parseOSRelease(r io.Reader) osRelease {
	var result osRelease
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		i := strings.IndexByte(line, '=')
		if i < 0 {
			continue
		}
		key := line[:i]
		value := unquote(line[i+1:])

		switch key {
		case "ID":
			result.ID = value
		case "VERSION_ID":
			result.VersionID = value
		case "ID_LIKE":
			result.IDLike = strings.Fields(value)
		}
	}
	// A scanner error means a malformed or unreadable file; treat it the
	// same as a missing one.
	return result
}

// os-release values may be quoted with single or double quotes.
func unquote(v string) string {
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}
