package benchmark

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{
	"run_id", "model", "root", "features", "reps", "errors",
	"mean_ns", "stddev_ns", "p50_ns", "p95_ns", "p99_ns",
}

// WriteCSV renders records as CSV with a header row. Durations are written
// as integer nanoseconds.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.RunID.String(),
			rec.Model.String(),
			rec.Root,
			strconv.Itoa(rec.Features),
			strconv.Itoa(rec.Reps),
			strconv.Itoa(rec.Errors),
			strconv.FormatInt(rec.Stats.Mean.Nanoseconds(), 10),
			strconv.FormatInt(rec.Stats.Stddev.Nanoseconds(), 10),
			strconv.FormatInt(rec.Stats.P50.Nanoseconds(), 10),
			strconv.FormatInt(rec.Stats.P95.Nanoseconds(), 10),
			strconv.FormatInt(rec.Stats.P99.Nanoseconds(), 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
