package llvmshim

import (
	"bufio"
	"strings"
)

// ExtractArch returns the architecture triple embedded in a Rust toolchain identifier. The release channel
// and any date or version segments are dropped:
//
//	nightly-2018-11-30-x86_64-unknown-linux-gnu => x86_64-unknown-linux-gnu
//	stable-x86_64-apple-darwin                  => x86_64-apple-darwin
func ExtractArch(toolchain string) string {
	segments := strings.Split(toolchain, "-")[1:]
	for len(segments) > 0 && startsWithDigit(segments[0]) {
		segments = segments[1:]
	}
	return strings.Join(segments, "-")
}

// startsWithDigit reports whether s is empty or begins with an ASCII digit.
func startsWithDigit(s string) bool {
	return s == "" || (s[0] >= '0' && s[0] <= '9')
}

// hostFromVersion extracts the value of the "host:" line from `rustc -vV` output.
func hostFromVersion(output string) (string, bool) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if host, ok := strings.CutPrefix(line, "host:"); ok {
			host = strings.TrimSpace(host)
			return host, host != ""
		}
	}
	return "", false
}

// targetArchFromCfg extracts the target_arch value from `rustc --print cfg` output.
func targetArchFromCfg(output string) (string, bool) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok || key != "target_arch" {
			continue
		}
		value = strings.Trim(value, `"`)
		return value, value != ""
	}
	return "", false
}
