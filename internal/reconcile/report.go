package reconcile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

var csvHeader = []string{"county", "window", "db_count", "api_count", "db_bond_sum", "diff_pct", "status"}

// WriteReports writes the text and CSV renditions of r into dir and returns their paths.
func WriteReports(dir string, r *Report) (string, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create report dir: %w", err)
	}

	base := "windows_" + r.GeneratedAt.UTC().Format("20060102_1504")
	txtPath := filepath.Join(dir, base+".txt")
	csvPath := filepath.Join(dir, base+".csv")

	if err := writeFile(txtPath, func(w io.Writer) error { return WriteText(w, r) }); err != nil {
		return "", "", err
	}
	if err := writeFile(csvPath, func(w io.Writer) error { return WriteCSV(w, r) }); err != nil {
		return "", "", err
	}
	return txtPath, csvPath, nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// WriteCSV writes one row per comparison.
func WriteCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, c := range r.Comparisons {
		row := []string{
			c.County,
			string(c.Window),
			strconv.FormatInt(c.DBCount, 10),
			strconv.FormatInt(c.APICount, 10),
			c.DBBondSum.StringFixed(2),
			strconv.FormatFloat(c.DiffPct, 'f', 2, 64),
			c.Status,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteText writes the human-readable report grouped by county.
func WriteText(w io.Writer, r *Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Window Evaluation @ %s\n", r.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	county := ""
	for _, c := range r.sortedByCounty() {
		if c.County != county {
			if county != "" {
				b.WriteString("\n")
			}
			county = c.County
			fmt.Fprintf(&b, "%s:\n", titleCase(county))
		}
		fmt.Fprintf(&b, "  %6s: db=%6d  api=%6d  sum=$%s  diff=%6.2f%%  %s\n",
			c.Window, c.DBCount, c.APICount, c.DBBondSum.StringFixed(2), c.DiffPct, strings.ToUpper(c.Status))
	}

	b.WriteString("\n" + strings.Repeat("-", 60) + "\n")
	fmt.Fprintf(&b, "Tolerance: %.2f%%  Mismatches: %d/%d\n", r.TolerancePct, len(r.Mismatches()), len(r.Comparisons))
	fmt.Fprintf(&b, "Bucket coverage: %.2f%% (%d matched, %d drifted, %d unclassifiable of %d)\n",
		r.Coverage.Rate()*100, r.Coverage.Matched, r.Coverage.Mismatched, r.Coverage.Unclassifiable, r.Coverage.Total)

	_, err := io.WriteString(w, b.String())
	return err
}

// sortedByCounty keeps window order within a county.
func (r *Report) sortedByCounty() []Comparison {
	out := make([]Comparison, len(r.Comparisons))
	copy(out, r.Comparisons)
	sort.SliceStable(out, func(i, j int) bool { return out[i].County < out[j].County })
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
