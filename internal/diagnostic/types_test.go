package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("broken_chain", "stage 2 starts from \"water\"", "soil-to-fertilizer", "")
	assert.True(t, d.IsValid(), "warnings must not invalidate")

	d.AddError("overlapping_rules", "source [10, 20) overlaps [15, 30)", "seed-to-soil", "rule 2")
	d.AddError("zero_length_seed", "seed range has length 0", "", "seeds[1]")

	require.Error(t, d.Error())
	assert.Equal(t,
		`stage "seed-to-soil" rule 2: [overlapping_rules] source [10, 20) overlaps [15, 30); seeds[1]: [zero_length_seed] seed range has length 0`,
		d.Error().Error())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddInfo("no_stages", "no stages", "", "")
	b.AddError("no_seeds", "no seeds", "", "")
	b.AddWarning("broken_chain", "gap", "x", "")

	a.Merge(b)

	assert.True(t, a.HasErrors())
	require.Len(t, a.All(), 3)
	assert.Equal(t, SeverityError, a.All()[0].Severity)
	assert.Equal(t, SeverityInfo, a.All()[2].Severity)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
