package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace_SampleGolden(t *testing.T) {
	m, input, err := Sample()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Trace(&buf, m, input, TraceOptions{}))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "sample_trace", buf.Bytes())
}

func TestTrace_ReturnsMachineToBuildMode(t *testing.T) {
	m, input, err := Sample()
	require.NoError(t, err)

	var first, second bytes.Buffer
	require.NoError(t, Trace(&first, m, input, TraceOptions{}))
	assert.False(t, m.Running())

	// A second trace over the same machine must replay identically.
	require.NoError(t, Trace(&second, m, input, TraceOptions{}))
	assert.Equal(t, first.String(), second.String())
}

func TestTrace_RejectsInputOutsideAlphabet(t *testing.T) {
	m, _, err := Sample()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = Trace(&buf, m, "0012", TraceOptions{})
	assert.Error(t, err)
	assert.False(t, m.Running())
	assert.Zero(t, buf.Len())
}
