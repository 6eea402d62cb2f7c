package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Column headers of the launch-records CSV.
const (
	ColLaunchSite      = "Launch Site"
	ColPayloadMass     = "Payload Mass (kg)"
	ColBoosterCategory = "Booster Version Category"
	ColClass           = "class"
)

// ErrNoRecords is returned when the input has a header but no data rows.
var ErrNoRecords = errors.New("dataset: no records")

// LaunchRecord is one row of the dataset.
type LaunchRecord struct {
	LaunchSite      string  `json:"launch_site"`
	PayloadMassKg   float64 `json:"payload_mass_kg"`
	BoosterCategory string  `json:"booster_category"`
	Outcome         bool    `json:"outcome"`
}

// OutcomeValue returns the outcome as 1 (success) or 0 (failure).
func (r LaunchRecord) OutcomeValue() float64 {
	if r.Outcome {
		return 1
	}
	return 0
}

// ParseError reports a malformed cell or header.
type ParseError struct {
	Line   int    // 1-based line in the input; 0 when not line-specific
	Column string // column header, empty for structural errors
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("dataset: line %d column %q: %v", e.Line, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("dataset: line %d: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("dataset: %v", e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// Table is the immutable, ordered collection of launch records.
type Table struct {
	records []LaunchRecord
	sites   []string // distinct sites in first-seen order
	min     float64
	max     float64
}

// Load opens the CSV file at path and parses it.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %q: %w", path, err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return t, nil
}

// Parse reads a launch-records CSV from r.
func Parse(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &ParseError{Err: errors.New("empty input")}
	}
	if err != nil {
		return nil, &ParseError{Line: 1, Err: err}
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	t := &Table{}
	seen := make(map[string]struct{})
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Line: csvLine(err), Err: err}
		}
		line, _ := cr.FieldPos(0)
		rec, err := parseRow(row, idx, line)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[rec.LaunchSite]; !ok {
			seen[rec.LaunchSite] = struct{}{}
			t.sites = append(t.sites, rec.LaunchSite)
		}
		if len(t.records) == 0 || rec.PayloadMassKg < t.min {
			t.min = rec.PayloadMassKg
		}
		if len(t.records) == 0 || rec.PayloadMassKg > t.max {
			t.max = rec.PayloadMassKg
		}
		t.records = append(t.records, rec)
	}

	if len(t.records) == 0 {
		return nil, ErrNoRecords
	}
	return t, nil
}

// columns maps each required header to its position in a row.
type columns struct {
	site, payload, booster, class int
}

func columnIndex(header []string) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}

	var missing []string
	lookup := func(name string) int {
		i, ok := pos[name]
		if !ok {
			missing = append(missing, strconv.Quote(name))
			return -1
		}
		return i
	}
	c := columns{
		site:    lookup(ColLaunchSite),
		payload: lookup(ColPayloadMass),
		booster: lookup(ColBoosterCategory),
		class:   lookup(ColClass),
	}
	if len(missing) > 0 {
		return columns{}, &ParseError{
			Line: 1,
			Err:  fmt.Errorf("missing required column(s) %s", strings.Join(missing, ", ")),
		}
	}
	return c, nil
}

func parseRow(row []string, c columns, line int) (LaunchRecord, error) {
	cell := func(i int) string { return strings.TrimSpace(row[i]) }

	site := cell(c.site)
	if site == "" {
		return LaunchRecord{}, &ParseError{Line: line, Column: ColLaunchSite, Err: errors.New("empty value")}
	}

	payload, err := strconv.ParseFloat(cell(c.payload), 64)
	if err != nil {
		return LaunchRecord{}, &ParseError{Line: line, Column: ColPayloadMass, Err: err}
	}
	if payload < 0 || math.IsNaN(payload) || math.IsInf(payload, 0) {
		return LaunchRecord{}, &ParseError{
			Line:   line,
			Column: ColPayloadMass,
			Err:    fmt.Errorf("%v is not a non-negative mass", payload),
		}
	}

	outcome, err := parseClass(cell(c.class))
	if err != nil {
		return LaunchRecord{}, &ParseError{Line: line, Column: ColClass, Err: err}
	}

	return LaunchRecord{
		LaunchSite:      site,
		PayloadMassKg:   payload,
		BoosterCategory: cell(c.booster),
		Outcome:         outcome,
	}, nil
}

// csvLine extracts the input line from an encoding/csv error, or 0.
func csvLine(err error) int {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return pe.StartLine
	}
	return 0
}

// parseClass accepts 0/1 in integer or float spelling.
func parseClass(s string) (bool, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false, fmt.Errorf("outcome %q is not 0 or 1", s)
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("outcome %q is not 0 or 1", s)
	}
}
