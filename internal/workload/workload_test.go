package workload

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

var expected = []core.Descriptor{
	{ID: 1, ArrivalTime: 0, BurstTime: 5, Priority: 2},
	{ID: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1},
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{name: "csv with header", file: "w.csv", body: "id,burst,arrival,priority\n1,5,0,2\n2, 3, 1, 1\n"},
		{name: "csv without header", file: "w.csv", body: "1,5,0,2\n2,3,1,1\n"},
		{
			name: "yaml",
			file: "w.yaml",
			body: "processes:\n  - {id: 1, arrival_time: 0, burst_time: 5, priority: 2}\n  - {id: 2, arrival_time: 1, burst_time: 3, priority: 1}\n",
		},
		{
			name: "json",
			file: "w.JSON",
			body: `{"processes":[{"process_id":1,"arrival_time":0,"burst_time":5,"priority":2},{"process_id":2,"arrival_time":1,"burst_time":3,"priority":1}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			descs, err := Load(writeFile(t, tt.file, tt.body))
			require.NoError(t, err)
			assert.Equal(t, expected, descs)
		})
	}
}

func TestReadCSV_PriorityIsOptional(t *testing.T) {
	descs, err := ReadCSV(strings.NewReader("4,2,7\n"))
	require.NoError(t, err)
	assert.Equal(t, []core.Descriptor{{ID: 4, BurstTime: 2, ArrivalTime: 7}}, descs)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeFile(t, "w.txt", "1,2,3"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "w.csv", "1,2\n"))
	assert.ErrorContains(t, err, "want 3 or 4 columns")

	_, err = Load(writeFile(t, "w.csv", "1,2,3\n2,x,3\n"))
	assert.ErrorContains(t, err, "row 2 column 2")

	_, err = Load(writeFile(t, "w.yaml", "processes: [\n"))
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	opts := DefaultGenerateOptions(12, 99)

	first, err := Generate(opts)
	require.NoError(t, err)
	second, err := Generate(opts)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed, same workload")

	require.Len(t, first, 12)
	for i, d := range first {
		assert.Equal(t, i+1, d.ID)
		assert.GreaterOrEqual(t, d.BurstTime, 1)
		assert.LessOrEqual(t, d.BurstTime, opts.MaxBurst)
		assert.GreaterOrEqual(t, d.ArrivalTime, 0)
		assert.LessOrEqual(t, d.ArrivalTime, opts.MaxArrival)
	}

	_, err = core.NewWorkload(first)
	assert.NoError(t, err)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := Generate(DefaultGenerateOptions(0, 1))
	assert.ErrorIs(t, err, core.ErrInvalidWorkload)

	_, err = Generate(GenerateOptions{Count: 3, MaxBurst: 0})
	assert.ErrorIs(t, err, core.ErrInvalidWorkload)
}

func TestWrite_ReadsBack(t *testing.T) {
	readers := map[string]func(io.Reader) ([]core.Descriptor, error){
		"csv":  ReadCSV,
		"yaml": ReadYAML,
		"json": ReadJSON,
	}
	for format, read := range readers {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, format, expected))
			descs, err := read(&buf)
			require.NoError(t, err)
			assert.Equal(t, expected, descs)
		})
	}

	assert.ErrorIs(t, Write(io.Discard, "xml", expected), ErrUnsupportedFormat)
}
