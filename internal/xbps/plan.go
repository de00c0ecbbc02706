package xbps

import (
	"sort"
	"strings"
)

// Update describes one entry of a system update plan.
type Update struct {
	Name string
	From string
	To   string
}

// NotInstalled is the placeholder shown for packages without an
// installed version.
const NotInstalled = "<not installed>"

// planActions are the xbps-install dry-run actions that belong in an
// update plan.
var planActions = map[string]bool{
	"update":    true,
	"install":   true,
	"reinstall": true,
	"downgrade": true,
}

// ParsePlan parses `xbps-install -Sun` output. The format is columnar:
//
//	<pkgver> <action> <arch> <repository> <installedsize> <downloadsize>
//
// installedVersion resolves the "from" side per package name.
func ParsePlan(text string, installedVersion func(pkg string) (string, bool, error)) ([]Update, error) {
	var out []Update
	seen := make(map[string]int)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		// Skip non-plan chatter.
		if strings.HasPrefix(line, "=>") ||
			strings.HasPrefix(line, "[") ||
			strings.HasPrefix(line, "xbps-install:") {
			continue
		}

		cols := strings.Fields(line)
		if len(cols) < 4 {
			continue
		}

		pkgver, action := cols[0], cols[1]
		if !planActions[action] {
			continue
		}

		name, ok := NameFromPkgver(pkgver)
		if !ok {
			continue
		}

		from := NotInstalled
		if v, installed, err := installedVersion(name); err != nil {
			return nil, err
		} else if installed {
			from = v
		}

		u := Update{Name: name, From: from, To: pkgver}
		if i, dup := seen[name]; dup {
			// Keep the last occurrence per package.
			out[i] = u
			continue
		}
		seen[name] = len(out)
		out = append(out, u)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// NameFromPkgver splits a pkgver like "bash-5.2_1" into its package name.
// The version part must start with a digit, which disambiguates names
// containing dashes.
func NameFromPkgver(pkgver string) (string, bool) {
	i := strings.LastIndex(pkgver, "-")
	if i <= 0 || i == len(pkgver)-1 {
		return "", false
	}
	ver := pkgver[i+1:]
	if ver[0] < '0' || ver[0] > '9' {
		return "", false
	}
	return pkgver[:i], true
}
