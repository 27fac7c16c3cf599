package bench

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{
	"run", "engine", "inserted", "distinct", "height",
	"insert_ns", "search_ns", "probes", "hits", "error",
}

// WriteCSV writes results as CSV with a header row. Durations are given in
// nanoseconds.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		errText := ""
		if r.Err != nil {
			errText = r.Err.Error()
		}
		record := []string{
			r.RunID.String(),
			r.Kind.String(),
			strconv.Itoa(r.Inserted),
			strconv.Itoa(r.Distinct),
			strconv.Itoa(r.Height),
			strconv.FormatInt(r.InsertTime.Nanoseconds(), 10),
			strconv.FormatInt(r.SearchTime.Nanoseconds(), 10),
			strconv.Itoa(r.Probes),
			strconv.Itoa(r.Hits),
			errText,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
