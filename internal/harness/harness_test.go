package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64p(n int64) *int64 { return &n }

func TestRunRecordsSuccessAndFailure(t *testing.T) {
	sc := &Scenario{
		Name: "mixed",
		Steps: []Step{
			{Op: OpEncode, Int: int64p(9), To: "roman"},
			{Op: OpEncode, Int: int64p(0), To: "roman"},
			{Op: OpDecode, Text: "IX", From: "roman"},
		},
	}

	result := Run(sc)

	require.Len(t, result.Steps, 3)
	assert.Equal(t, "ok", result.Steps[0].Status)
	assert.Equal(t, "IX", result.Steps[0].Value)

	// A failing step is an outcome, not an abort.
	assert.Equal(t, "error", result.Steps[1].Status)
	assert.Equal(t, "not_positive", result.Steps[1].Code)

	assert.Equal(t, "ok", result.Steps[2].Status)
	require.NotNil(t, result.Steps[2].Int)
	assert.Equal(t, int64(9), *result.Steps[2].Int)
}

func TestRunDetectStep(t *testing.T) {
	sc := &Scenario{
		Name: "detect",
		Steps: []Step{
			{Op: OpDetect, Text: "MMXXVI"},
			{Op: OpDetect, Text: "!!"},
		},
	}

	result := Run(sc)

	require.Len(t, result.Steps, 2)
	assert.Equal(t, "ok", result.Steps[0].Status)
	assert.Equal(t, "roman", result.Steps[0].System)
	assert.Equal(t, "error", result.Steps[1].Status)
	assert.Equal(t, "unknown_system", result.Steps[1].Code)
}

func TestRunBatchOrderPreserved(t *testing.T) {
	sc := &Scenario{
		Name: "batch",
		Steps: []Step{
			{Op: OpEncodeAll, Ints: []int64{3, 1, 2}, To: "roman"},
		},
	}

	result := Run(sc)

	require.Len(t, result.Steps, 1)
	assert.Equal(t, []string{"III", "I", "II"}, result.Steps[0].Values)
}

func TestRunSeparatorOption(t *testing.T) {
	sc := &Scenario{
		Name: "separator",
		Steps: []Step{
			{Op: OpEncode, Int: int64p(1234567), To: "arabic", Separator: ","},
		},
	}

	result := Run(sc)

	require.Len(t, result.Steps, 1)
	assert.Equal(t, "1,234,567", result.Steps[0].Value)
}
