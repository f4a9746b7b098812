// # internal/engine/specifier/classifier.go

// Package specifier decides which JavaScript import specifiers refer to
// packages that have to be installed, and reduces them to the installable
// package root.
//
// Rules are evaluated in a fixed order and the first match wins:
//
//	relative      "./x", "../x"
//	file URL      "file:///opt/x.js"
//	absolute      "/opt/x.js" (host path conventions)
//	builtin       "fs", "fs/promises", or anything containing ':' ("node:fs")
//	installable   "lodash", "@scope/name", "pkg/sub/path", "@scope/name/sub"
package specifier

import (
	"path/filepath"
	"strings"
)

// AbsFunc reports whether a string is an absolute filesystem path.
type AbsFunc func(string) bool

// Classifier classifies specifiers against a fixed built-in registry. It holds
// no mutable state and is safe for concurrent use.
type Classifier struct {
	registry Registry
	isAbs    AbsFunc
}

type Option func(*Classifier)

// WithAbsFunc replaces the host absoluteness check.
func WithAbsFunc(fn AbsFunc) Option {
	return func(c *Classifier) {
		if fn != nil {
			c.isAbs = fn
		}
	}
}

func NewClassifier(registry Registry, opts ...Option) *Classifier {
	c := &Classifier{
		registry: registry,
		isAbs:    filepath.IsAbs,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultClassifier = NewClassifier(DefaultRegistry())

// Classify classifies spec with the default Node.js registry.
func Classify(spec string) Classification {
	return defaultClassifier.Classify(spec)
}

// PackagesToInstall is the default-registry form of Classifier.PackagesToInstall.
func PackagesToInstall(specs []string) PackageSet {
	return defaultClassifier.PackagesToInstall(specs)
}

func (c *Classifier) Registry() Registry {
	return c.registry
}

func (c *Classifier) Classify(spec string) Classification {
	kind := c.kindOf(spec)
	root := packageRoot(spec, kind)
	if kind == KindDeepBare && c.registry.Contains(root) {
		// "fs/x" must not install "fs": a root that is itself built in
		// keeps the whole specifier out of the install set.
		kind, root = KindBuiltin, ""
	}
	return Classification{
		Specifier: spec,
		Kind:      kind,
		Package:   root,
	}
}

func (c *Classifier) kindOf(spec string) Kind {
	abs := c.isAbs(spec)
	switch {
	case strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../"):
		return KindRelative
	case !abs && strings.HasPrefix(spec, "file:"):
		return KindFileURL
	case abs:
		return KindAbsolutePath
	case c.registry.Contains(spec) || strings.Contains(spec, ":"):
		// Scheme-qualified forms such as "node:fs/promises" must never
		// reach the segment rules below.
		return KindBuiltin
	}

	segments := strings.Count(spec, "/") + 1
	if strings.HasPrefix(spec, "@") {
		switch {
		case segments > 2:
			return KindDeepBare
		case segments == 2:
			return KindNamespaced
		default:
			return KindBare
		}
	}
	if segments > 1 {
		return KindDeepBare
	}
	return KindBare
}

func packageRoot(spec string, kind Kind) string {
	switch kind {
	case KindBare, KindNamespaced:
		return spec
	case KindDeepBare:
		parts := strings.Split(spec, "/")
		if strings.HasPrefix(spec, "@") {
			return parts[0] + "/" + parts[1]
		}
		return parts[0]
	default:
		return ""
	}
}

// ClassifyAll classifies every specifier, preserving input order.
func (c *Classifier) ClassifyAll(specs []string) []Classification {
	out := make([]Classification, 0, len(specs))
	for _, spec := range specs {
		out = append(out, c.Classify(spec))
	}
	return out
}

// PackagesToInstall returns the distinct package roots of every installable
// specifier in specs. A nil or empty input yields an empty set.
func (c *Classifier) PackagesToInstall(specs []string) PackageSet {
	set := NewPackageSet()
	for _, spec := range specs {
		if cl := c.Classify(spec); cl.Kind.Installable() {
			set.Add(cl.Package)
		}
	}
	return set
}
