package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parcel-desk/internal/constants"

	"github.com/urfave/cli/v2"
)

func runDesk(t *testing.T, table string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DESK_LOG_DIR", t.TempDir())
	var out bytes.Buffer
	deskCLI := newCLI()
	deskCLI.Writer = &out
	deskCLI.ErrWriter = &out
	deskCLI.ExitErrHandler = func(*cli.Context, error) {}
	err := deskCLI.Run(append([]string{"desk", "--file", table}, args...))
	return out.String(), err
}

func TestCountOnMissingTable(t *testing.T) {
	table := filepath.Join(t.TempDir(), "delivery_data.csv")
	output, err := runDesk(t, table, "count")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if !strings.Contains(output, "Total Deliveries: 0") {
		t.Fatalf("unexpected output: %s", output)
	}
}

func TestListEmptyTable(t *testing.T) {
	table := filepath.Join(t.TempDir(), "delivery_data.csv")
	output, err := runDesk(t, table, "list", "--sort", "name")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(output, "No data available.") {
		t.Fatalf("unexpected output: %s", output)
	}
}

func TestListRejectsUnknownSortKey(t *testing.T) {
	table := filepath.Join(t.TempDir(), "delivery_data.csv")
	if _, err := runDesk(t, table, "list", "--sort", "price"); err == nil {
		t.Fatalf("expected error for unknown sort key")
	}
}

func TestShowAndDeleteUnknownOrder(t *testing.T) {
	table := filepath.Join(t.TempDir(), "delivery_data.csv")
	for _, cmd := range []string{"show", "delete"} {
		_, err := runDesk(t, table, cmd, "OD00000")
		if err == nil {
			t.Fatalf("%s: expected not found error", cmd)
		}
		if !strings.Contains(err.Error(), "Order ID not found.") {
			t.Fatalf("%s: unexpected error: %v", cmd, err)
		}
	}
}

func TestSubcommandsWarnAboutSkippedRows(t *testing.T) {
	table := filepath.Join(t.TempDir(), "delivery_data.csv")
	content := strings.Join(constants.TableHeader, ",") + "\n2026-10-15,OD-BROKEN,short row\n"
	if err := os.WriteFile(table, []byte(content), 0o644); err != nil {
		t.Fatalf("write table failed: %v", err)
	}
	for _, args := range [][]string{{"count"}, {"show", "OD00000"}, {"delete", "OD00000"}} {
		output, _ := runDesk(t, table, args...)
		if !strings.Contains(output, "Warning: Some rows had incorrect lengths and were skipped.") {
			t.Fatalf("%s: expected skipped-row warning, got: %s", args[0], output)
		}
	}
}

func TestExportDisabled(t *testing.T) {
	table := filepath.Join(t.TempDir(), "delivery_data.csv")
	_, err := runDesk(t, table, "export")
	if err == nil || !strings.Contains(err.Error(), "Snapshot export is disabled") {
		t.Fatalf("expected disabled export error, got %v", err)
	}
}

func TestSearchRequiresTerm(t *testing.T) {
	table := filepath.Join(t.TempDir(), "delivery_data.csv")
	if _, err := runDesk(t, table, "search"); err == nil {
		t.Fatalf("expected error without search term")
	}
}
