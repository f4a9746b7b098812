package observability

import "go.opentelemetry.io/otel"

// Tracer is resolved through the global provider, so spans are no-ops until a
// provider is installed with otel.SetTracerProvider.
var Tracer = otel.Tracer("jsdeps")
