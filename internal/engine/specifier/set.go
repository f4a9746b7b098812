package specifier

import "jsdeps/internal/shared/util"

// PackageSet is a set of installable package names.
type PackageSet map[string]struct{}

func NewPackageSet(names ...string) PackageSet {
	s := make(PackageSet, len(names))
	for _, name := range names {
		s.Add(name)
	}
	return s
}

func (s PackageSet) Add(name string) {
	s[name] = struct{}{}
}

func (s PackageSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

func (s PackageSet) Len() int {
	return len(s)
}

// Sorted returns the members in lexical order so installs are reproducible.
func (s PackageSet) Sorted() []string {
	return util.SortedStringKeys(s)
}
