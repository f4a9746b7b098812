package observability

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogMetrics(t *testing.T) {
	before := testutil.ToFloat64(SpecifiersTotal.WithLabelValues("bare"))
	SpecifiersTotal.WithLabelValues("bare").Add(2)
	assert.Equal(t, before+2, testutil.ToFloat64(SpecifiersTotal.WithLabelValues("bare")))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	require.NoError(t, LogMetrics(logger))

	out := buf.String()
	assert.True(t, strings.Contains(out, "jsdeps_specifiers_total"), out)
	assert.True(t, strings.Contains(out, "kind=bare"), out)
}
