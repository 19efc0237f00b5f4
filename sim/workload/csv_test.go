package workload

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sched-sim/sched-sim/sim"
)

func TestCSV_RoundTrip(t *testing.T) {
	original := []sim.Process{
		sim.NewProcess(1, 0, 5, 2),
		sim.NewProcess(2, 1, 3, 1),
		sim.NewProcess(3, 2, 8, 3),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, original))

	loaded, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestCSV_HeaderWritten(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "PID,Arrival_Time,Burst_Time,Priority", strings.Split(buf.String(), "\n")[0])
}

func TestReadCSV_RejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"short header", "PID,Arrival_Time\n"},
		{"non-numeric field", "PID,Arrival_Time,Burst_Time,Priority\n1,0,abc,2\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tc.data))
			require.Error(t, err)
		})
	}
}

func TestSaveAndLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset_uniform.csv")
	dataset := NewGenerator(42).Uniform(10, 20, 15, 5)

	require.NoError(t, SaveCSV(path, dataset))
	loaded, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, dataset, loaded)
}
