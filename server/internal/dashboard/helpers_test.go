package dashboard_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/launchdash/launchdash/server/internal/dataset"
)

const header = "Launch Site,Payload Mass (kg),Booster Version Category,class\n"

// table parses rows (without header) into a Table.
func table(t *testing.T, rows ...string) *dataset.Table {
	t.Helper()
	tbl, err := dataset.Parse(strings.NewReader(header + strings.Join(rows, "\n") + "\n"))
	if err != nil {
		t.Fatalf("dataset.Parse: %v", err)
	}
	return tbl
}

// launches loads the shared sixteen-launch fixture.
func launches(t *testing.T) *dataset.Table {
	t.Helper()
	tbl, err := dataset.Load(filepath.Join("..", "dataset", "testdata", "launches.csv"))
	if err != nil {
		t.Fatalf("dataset.Load: %v", err)
	}
	return tbl
}

func sum(vs []float64) float64 {
	var s float64
	for _, v := range vs {
		s += v
	}
	return s
}
