// Package workload reads process descriptors from files and generates synthetic ones.
package workload

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/core"
)

var ErrUnsupportedFormat = errors.New("unsupported workload format")

// File is the YAML/JSON document layout.
type File struct {
	Processes []core.Descriptor `json:"processes" yaml:"processes"`
}

// Load reads a workload file, choosing the parser from the extension:
// .csv, .yaml/.yml or .json.
func Load(path string) ([]core.Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workload: %w", err)
	}
	defer f.Close()

	var descs []core.Descriptor
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		descs, err = ReadCSV(f)
	case ".yaml", ".yml":
		descs, err = ReadYAML(f)
	case ".json":
		descs, err = ReadJSON(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load workload %s: %w", path, err)
	}
	return descs, nil
}

// ReadCSV parses rows of "id,burst,arrival[,priority]". A first row whose id
// column is not a number is treated as a header.
func ReadCSV(r io.Reader) ([]core.Descriptor, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		if _, err := strconv.Atoi(strings.TrimSpace(rows[0][0])); err != nil {
			rows = rows[1:]
		}
	}

	descs := make([]core.Descriptor, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("row %d: want 3 or 4 columns, got %d", i+1, len(row))
		}
		fields := make([]int, 4)
		for col := range row {
			v, err := strconv.Atoi(strings.TrimSpace(row[col]))
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", i+1, col+1, err)
			}
			fields[col] = v
		}
		descs = append(descs, core.Descriptor{
			ID:          fields[0],
			BurstTime:   fields[1],
			ArrivalTime: fields[2],
			Priority:    fields[3],
		})
	}
	return descs, nil
}

// ReadYAML parses a File document.
func ReadYAML(r io.Reader) ([]core.Descriptor, error) {
	var doc File
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return doc.Processes, nil
}

// ReadJSON parses a File document.
func ReadJSON(r io.Reader) ([]core.Descriptor, error) {
	var doc File
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return doc.Processes, nil
}

// GenerateOptions bounds the values of a synthetic workload.
type GenerateOptions struct {
	Count       int
	Seed        int64
	MaxArrival  int // arrivals are drawn from [0, MaxArrival]
	MaxBurst    int // bursts are drawn from [1, MaxBurst]
	MaxPriority int // priorities are drawn from [0, MaxPriority]
}

// DefaultGenerateOptions returns bounds in the range of a classroom exercise.
func DefaultGenerateOptions(count int, seed int64) GenerateOptions {
	return GenerateOptions{Count: count, Seed: seed, MaxArrival: 10, MaxBurst: 10, MaxPriority: 5}
}

// Generate builds a deterministic pseudo-random workload with ids 1..Count.
func Generate(opts GenerateOptions) ([]core.Descriptor, error) {
	if opts.Count <= 0 {
		return nil, fmt.Errorf("%w: process count must be positive, got %d", core.ErrInvalidWorkload, opts.Count)
	}
	if opts.MaxBurst <= 0 || opts.MaxArrival < 0 || opts.MaxPriority < 0 {
		return nil, fmt.Errorf("%w: bad generator bounds %+v", core.ErrInvalidWorkload, opts)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	descs := make([]core.Descriptor, opts.Count)
	for i := range descs {
		descs[i] = core.Descriptor{
			ID:          i + 1,
			ArrivalTime: rng.Intn(opts.MaxArrival + 1),
			BurstTime:   1 + rng.Intn(opts.MaxBurst),
			Priority:    rng.Intn(opts.MaxPriority + 1),
		}
	}
	return descs, nil
}

// Write encodes descs as "csv", "yaml" or "json", in the layouts Load reads back.
func Write(w io.Writer, format string, descs []core.Descriptor) error {
	switch strings.ToLower(format) {
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"id", "burst", "arrival", "priority"}); err != nil {
			return err
		}
		for _, d := range descs {
			row := []string{strconv.Itoa(d.ID), strconv.Itoa(d.BurstTime), strconv.Itoa(d.ArrivalTime), strconv.Itoa(d.Priority)}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(File{Processes: descs}); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(File{Processes: descs})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
