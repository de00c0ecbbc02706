package source

import (
	"fmt"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/saltnpepper97/vx/internal/system"
)

// Template holds the fields vx reads from a void-packages template.
// Only version and revision matter for update planning; everything else
// in the template belongs to xbps-src.
type Template struct {
	Name     string
	Version  string
	Revision string
}

// Pkgver returns the candidate pkgver a successful build would produce.
func (t *Template) Pkgver() string {
	return fmt.Sprintf("%s-%s_%s", t.Name, t.Version, t.Revision)
}

// TemplatePath resolves srcpkgs/<name>/template inside the checkout.
// Package names come from the command line, so the join must not be able
// to escape the tree.
func TemplatePath(voidpkgs, name string) (string, error) {
	rel := filepath.Join("srcpkgs", name, "template")
	path, err := securejoin.SecureJoin(voidpkgs, rel)
	if err != nil {
		return "", fmt.Errorf("invalid package name %q: %w", name, err)
	}
	return path, nil
}

// ParseTemplate reads version= and revision= from a package template.
// Templates are shell scripts; vx only scans for the two plain variable
// assignments, strips quotes, and defaults revision to "1".
func ParseTemplate(fs system.FileSystem, voidpkgs, name string) (*Template, error) {
	path, err := TemplatePath(voidpkgs, name)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("no template for %s: %w", name, err)
	}

	t := &Template{Name: name, Revision: "1"}
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if v, ok := strings.CutPrefix(line, "version="); ok {
			t.Version = unquote(v)
		} else if v, ok := strings.CutPrefix(line, "revision="); ok {
			if r := unquote(v); r != "" {
				t.Revision = r
			}
		}
	}

	if t.Version == "" {
		return nil, fmt.Errorf("template for %s has no version=", name)
	}
	return t, nil
}

func unquote(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}
