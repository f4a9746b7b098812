// # internal/engine/specifier/registry.go
package specifier

import (
	"strings"

	"jsdeps/internal/shared/util"
)

// Registry is an immutable set of module names provided by the runtime.
type Registry struct {
	names map[string]struct{}
}

// NewRegistry builds a registry from names. Blank names are ignored.
func NewRegistry(names ...string) Registry {
	r := Registry{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		r.names[name] = struct{}{}
	}
	return r
}

// DefaultRegistry returns the Node.js built-in modules.
func DefaultRegistry() Registry {
	return defaultRegistry
}

// With returns a copy of r extended with names. r itself is left untouched.
func (r Registry) With(names ...string) Registry {
	merged := make([]string, 0, len(r.names)+len(names))
	for name := range r.names {
		merged = append(merged, name)
	}
	merged = append(merged, names...)
	return NewRegistry(merged...)
}

func (r Registry) Contains(name string) bool {
	_, ok := r.names[name]
	return ok
}

func (r Registry) Len() int {
	return len(r.names)
}

// Names returns the registered names in sorted order.
func (r Registry) Names() []string {
	return util.SortedStringKeys(r.names)
}

var defaultRegistry = NewRegistry(nodeBuiltinModules...)

// nodeBuiltinModules mirrors module.builtinModules of current Node.js
// releases, sub-path entries included. Private "_" modules are left out.
var nodeBuiltinModules = []string{
	"assert",
	"assert/strict",
	"async_hooks",
	"buffer",
	"child_process",
	"cluster",
	"console",
	"constants",
	"crypto",
	"dgram",
	"diagnostics_channel",
	"dns",
	"dns/promises",
	"domain",
	"events",
	"fs",
	"fs/promises",
	"http",
	"http2",
	"https",
	"inspector",
	"inspector/promises",
	"module",
	"net",
	"os",
	"path",
	"path/posix",
	"path/win32",
	"perf_hooks",
	"process",
	"punycode",
	"querystring",
	"readline",
	"readline/promises",
	"repl",
	"stream",
	"stream/consumers",
	"stream/promises",
	"stream/web",
	"string_decoder",
	"sys",
	"timers",
	"timers/promises",
	"tls",
	"trace_events",
	"tty",
	"url",
	"util",
	"util/types",
	"v8",
	"vm",
	"wasi",
	"worker_threads",
	"zlib",
}
