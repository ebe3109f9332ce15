package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sosocrosswalk/soso/pkg/soso"
)

func counterValue(t *testing.T, m *Metrics, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	metric:
		for _, metric := range family.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if labels[pair.GetName()] != pair.GetValue() {
					continue metric
				}
			}
			return metric.GetCounter().GetValue()
		}
	}
	return 0
}

func TestRecordResult(t *testing.T) {
	m := New()

	m.RecordResult("spase", soso.RecordResult{Status: soso.StatusConverted, Duration: 3 * time.Millisecond})
	m.RecordResult("spase", soso.RecordResult{Status: soso.StatusConverted})
	m.RecordResult("spase", soso.RecordResult{Status: soso.StatusFailed})
	m.RecordResult("eml", soso.RecordResult{Status: soso.StatusDuplicate})

	assert.Equal(t, 2.0, counterValue(t, m, "soso_records_total", map[string]string{"strategy": "spase", "status": "converted"}))
	assert.Equal(t, 1.0, counterValue(t, m, "soso_records_total", map[string]string{"strategy": "spase", "status": "failed"}))
	assert.Equal(t, 1.0, counterValue(t, m, "soso_records_total", map[string]string{"strategy": "eml", "status": "duplicate"}))
}

func TestRecordProperties(t *testing.T) {
	m := New()

	m.RecordProperties(map[string]any{"name": "Wind", "url": "https://hpde.io/NASA/Wind"})
	m.RecordProperties(map[string]any{"name": "ACE"})

	assert.Equal(t, 2.0, counterValue(t, m, "soso_properties_emitted_total", map[string]string{"property": "name"}))
	assert.Equal(t, 1.0, counterValue(t, m, "soso_properties_emitted_total", map[string]string{"property": "url"}))
}

func TestIndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.RecordResult("spase", soso.RecordResult{Status: soso.StatusConverted})

	assert.Equal(t, 0.0, counterValue(t, b, "soso_records_total", map[string]string{"strategy": "spase", "status": "converted"}))
}

func TestWriteToTextfile(t *testing.T) {
	m := New()
	m.RecordResult("spase", soso.RecordResult{Status: soso.StatusConverted, Duration: time.Millisecond})
	m.RecordBatch(2 * time.Second)

	path := filepath.Join(t.TempDir(), "soso.prom")
	require.NoError(t, m.WriteToTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `soso_records_total{status="converted",strategy="spase"} 1`)
	assert.Contains(t, string(content), "soso_batch_duration_seconds 2")
	assert.Contains(t, string(content), "soso_conversion_duration_seconds_count")
}

func TestWriteToTextfile_BadDirectory(t *testing.T) {
	m := New()
	err := m.WriteToTextfile(filepath.Join(t.TempDir(), "missing", "soso.prom"))
	assert.Error(t, err)
}
