package cli

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/numera"
)

func executeList(t *testing.T, format string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format}
	cmd := NewListCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(nil)
	err := cmd.Execute()
	return buf.String(), err
}

func TestListText(t *testing.T) {
	out, err := executeList(t, "text")
	require.NoError(t, err)

	assert.Contains(t, out, "roman")
	assert.Contains(t, out, "ethiopic")
	assert.Contains(t, out, "MCMLXXXIV")
	assert.Contains(t, out, "system(s)")
}

func TestListJSON(t *testing.T) {
	out, err := executeList(t, "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result ListResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, len(numera.Systems()), result.Count)
	require.Len(t, result.Systems, result.Count)

	// Entries come back in detection priority order.
	for i, sys := range numera.Systems() {
		assert.Equal(t, sys, result.Systems[i].System)
	}
}
