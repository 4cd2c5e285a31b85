package dataset

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/devtype-tools/devtypegen/internal/batch"
	"github.com/parquet-go/parquet-go"
)

func writeTable(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "models.csv")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to write table: %v", err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTable(t, `Manufacturer,Model,GigabitEthernet Copper,GigabitEthernet SFP,Stacking,con0,psu0,Draw,Weight (pounds)
Cisco,CBS350-8P-E-2G,8,2,false,rj-45,iec-60320-c14,67.6,1.92
Cisco,C1300-24T-4G,24,4,true,rj-45,iec-60320-c14,30.2,6.61
`)

	records, diags, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("Expected no diagnostics, got %d: %v", len(diags), diags)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	rec := records[0]
	if rec.Manufacturer != "Cisco" || rec.Model != "CBS350-8P-E-2G" {
		t.Errorf("Unexpected identity: %s %s", rec.Manufacturer, rec.Model)
	}
	if rec.GigCopper != 8 || rec.GigSFP != 2 {
		t.Errorf("Unexpected port counts: copper=%d sfp=%d", rec.GigCopper, rec.GigSFP)
	}
	if rec.Stacking {
		t.Error("Expected stacking false")
	}
	if rec.Con0 != "rj-45" || rec.PSU0 != "iec-60320-c14" {
		t.Errorf("Unexpected console/power: %q %q", rec.Con0, rec.PSU0)
	}
	if rec.MaxDraw == nil || *rec.MaxDraw != 67.6 {
		t.Errorf("Unexpected draw: %v", rec.MaxDraw)
	}
	if rec.WeightLbs == nil || *rec.WeightLbs != 1.92 {
		t.Errorf("Unexpected weight: %v", rec.WeightLbs)
	}

	if !records[1].Stacking {
		t.Error("Expected stacking true for second record")
	}
}

func TestLoadCSVUnsetVersusZero(t *testing.T) {
	path := writeTable(t, `Manufacturer,Model,GigabitEthernet Copper,Draw
Cisco,SW-A,8,
Cisco,SW-B,8,0
`)

	records, diags, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("Expected no diagnostics, got %v", diags)
	}

	if records[0].MaxDraw != nil {
		t.Errorf("Expected blank draw cell to be unset, got %v", *records[0].MaxDraw)
	}
	if records[1].MaxDraw == nil || *records[1].MaxDraw != 0 {
		t.Errorf("Expected explicit zero draw to be present, got %v", records[1].MaxDraw)
	}
}

func TestLoadCSVRejectsBadRows(t *testing.T) {
	tests := []struct {
		name        string
		contents    string
		wantRecords int
		wantDiags   int
	}{
		{
			name: "missing model",
			contents: `Manufacturer,Model,GigabitEthernet Copper
Cisco,,8
Cisco,SW-OK,8
`,
			wantRecords: 1,
			wantDiags:   1,
		},
		{
			name: "missing manufacturer",
			contents: `Manufacturer,Model
,SW-X
Cisco,SW-OK
`,
			wantRecords: 1,
			wantDiags:   1,
		},
		{
			name: "wrong column count",
			contents: `Manufacturer,Model,GigabitEthernet Copper
Cisco,SW-SHORT
Cisco,SW-OK,8
`,
			wantRecords: 1,
			wantDiags:   1,
		},
		{
			name: "non-numeric count",
			contents: `Manufacturer,Model,GigabitEthernet Copper
Cisco,SW-BAD,eight
Cisco,SW-OK,8
`,
			wantRecords: 1,
			wantDiags:   1,
		},
		{
			name: "duplicate model",
			contents: `Manufacturer,Model
Cisco,SW-DUP
Cisco,SW-DUP
Cisco,SW-OK
`,
			wantRecords: 2,
			wantDiags:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTable(t, tt.contents)

			records, diags, err := NewLoader(path).Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if len(records) != tt.wantRecords {
				t.Errorf("Expected %d records, got %d", tt.wantRecords, len(records))
			}
			if len(diags) != tt.wantDiags {
				t.Errorf("Expected %d diagnostics, got %d: %v", tt.wantDiags, len(diags), diags)
			}
			for _, d := range diags {
				if !batch.IsKind(d, batch.KindValidation) {
					t.Errorf("Expected validation error, got %v", d)
				}
			}
		})
	}
}

func TestLoadCSVIgnoresUnknownColumns(t *testing.T) {
	path := writeTable(t, `Manufacturer,Model,Internal Notes
Cisco,SW-A,do not ship before Q3
`)

	records, diags, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(diags) != 0 || len(records) != 1 {
		t.Fatalf("Expected 1 record and no diagnostics, got %d/%d", len(records), len(diags))
	}
}

func TestLoadPreservesRowOrder(t *testing.T) {
	path := writeTable(t, `Manufacturer,Model
Cisco,SW-C
Cisco,SW-A
Cisco,SW-B
`)

	records, _, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	expected := []string{"SW-C", "SW-A", "SW-B"}
	for i, want := range expected {
		if records[i].Model != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, records[i].Model)
		}
	}
}

func TestLoadParquetMatchesCSV(t *testing.T) {
	dir := t.TempDir()

	// The same logical table in both formats, including one row that must
	// be rejected for a missing manufacturer.
	rows := []tableRow{
		{Manufacturer: "Cisco", Model: "CBS350-8P-E-2G", GigCopper: "8", GigSFP: "2", Stacking: "false", Con0: "rj-45", PSU0: "iec-60320-c14", Draw: "67.6", Weight: "1.92"},
		{Model: "SW-NOMFG"},
		{Manufacturer: "Cisco", Model: "C1300-24T-4G", GigCopper: "24", Stacking: "true"},
	}

	pqPath := filepath.Join(dir, "models.parquet")
	f, err := os.Create(pqPath)
	if err != nil {
		t.Fatal(err)
	}
	w := parquet.NewGenericWriter[tableRow](f)
	if _, err := w.Write(rows); err != nil {
		t.Fatalf("Failed to write parquet rows: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close parquet writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	csvPath := filepath.Join(dir, "models.csv")
	csvContents := `Manufacturer,Model,GigabitEthernet Copper,GigabitEthernet SFP,Stacking,con0,psu0,Draw,Weight (pounds)
Cisco,CBS350-8P-E-2G,8,2,false,rj-45,iec-60320-c14,67.6,1.92
,SW-NOMFG,,,,,,,
Cisco,C1300-24T-4G,24,,true,,,,
`
	if err := os.WriteFile(csvPath, []byte(csvContents), 0644); err != nil {
		t.Fatal(err)
	}

	pqRecords, pqDiags, err := NewLoader(pqPath).Load()
	if err != nil {
		t.Fatalf("Parquet load failed: %v", err)
	}
	csvRecords, csvDiags, err := NewLoader(csvPath).Load()
	if err != nil {
		t.Fatalf("CSV load failed: %v", err)
	}

	if !reflect.DeepEqual(pqRecords, csvRecords) {
		t.Errorf("Formats disagree:\nparquet: %+v\ncsv:     %+v", pqRecords, csvRecords)
	}
	if len(pqRecords) != 2 {
		t.Errorf("Expected 2 records, got %d", len(pqRecords))
	}

	if len(pqDiags) != 1 || len(csvDiags) != 1 {
		t.Fatalf("Expected one diagnostic per format, got %d/%d", len(pqDiags), len(csvDiags))
	}
	if pqDiags[0].ID != "SW-NOMFG" || csvDiags[0].ID != "SW-NOMFG" {
		t.Errorf("Expected the rejected row to be identified by model, got %q/%q", pqDiags[0].ID, csvDiags[0].ID)
	}
	if !batch.IsKind(pqDiags[0], batch.KindValidation) {
		t.Errorf("Expected a validation error, got %v", pqDiags[0])
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.xlsx")
	if err := os.WriteFile(path, []byte("not a table"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := NewLoader(path).Load(); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestConsoleTypes(t *testing.T) {
	tests := []struct {
		name     string
		record   ModelRecord
		expected int
	}{
		{
			name:     "all three ports",
			record:   ModelRecord{Con0: "rj-45", Con1: "usb-mini-b", Con2: "usb-c"},
			expected: 3,
		},
		{
			name:     "gap in the middle",
			record:   ModelRecord{Con0: "rj-45", Con2: "usb-c"},
			expected: 2,
		},
		{
			name:     "no console ports",
			record:   ModelRecord{},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ports := tt.record.ConsoleTypes()
			if len(ports) != tt.expected {
				t.Errorf("Expected %d ports, got %d", tt.expected, len(ports))
			}
		})
	}
}
