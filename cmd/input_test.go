package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sched-sim/sched-sim/sim/workload"
)

func TestBuildWorkload_KnownNames(t *testing.T) {
	g := workload.NewGenerator(7)
	for _, name := range datasetNames {
		processes, err := buildWorkload(g, name, 12)
		require.NoError(t, err, name)
		assert.Len(t, processes, 12, name)
	}
}

func TestBuildWorkload_UnknownName(t *testing.T) {
	_, err := buildWorkload(workload.NewGenerator(7), "lottery", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lottery")
}

func TestDatasetFileName(t *testing.T) {
	assert.Equal(t, "dataset_uniform.csv", datasetFileName("uniform"))
	assert.Equal(t, "dataset_burst_heavy.csv", datasetFileName("burst-heavy"))
}
