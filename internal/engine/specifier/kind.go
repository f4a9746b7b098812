package specifier

// Kind is the result of classifying a single import specifier. Every specifier
// maps to exactly one Kind.
type Kind int

const (
	KindRelative Kind = iota
	KindFileURL
	KindAbsolutePath
	KindBuiltin
	KindBare
	KindNamespaced
	KindDeepBare
)

var kindNames = map[Kind]string{
	KindRelative:     "relative",
	KindFileURL:      "file_url",
	KindAbsolutePath: "absolute_path",
	KindBuiltin:      "builtin",
	KindBare:         "bare",
	KindNamespaced:   "namespaced",
	KindDeepBare:     "deep_bare",
}

// AllKinds lists every kind in rule evaluation order.
func AllKinds() []Kind {
	return []Kind{
		KindRelative,
		KindFileURL,
		KindAbsolutePath,
		KindBuiltin,
		KindBare,
		KindNamespaced,
		KindDeepBare,
	}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Installable reports whether specifiers of this kind name a package that
// has to be installed.
func (k Kind) Installable() bool {
	switch k {
	case KindBare, KindNamespaced, KindDeepBare:
		return true
	default:
		return false
	}
}

// Classification is the outcome for one specifier. Package is empty unless
// Kind is installable.
type Classification struct {
	Specifier string
	Kind      Kind
	Package   string
}
