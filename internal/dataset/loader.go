package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/devtype-tools/devtypegen/internal/batch"
	"github.com/parquet-go/parquet-go"
)

// Loader handles loading of the model table
type Loader struct {
	tablePath string
}

// NewLoader creates a new model table loader
func NewLoader(tablePath string) *Loader {
	return &Loader{
		tablePath: tablePath,
	}
}

// Load loads records from a model table (CSV or Parquet).
//
// Records are returned in input row order. Rows that fail validation
// (missing identity fields, malformed values, duplicate model names, wrong
// column count) are reported as diagnostics and skipped; the load itself
// only fails when the file cannot be read at all.
func (l *Loader) Load() ([]ModelRecord, []*batch.Error, error) {
	ext := strings.ToLower(filepath.Ext(l.tablePath))

	var (
		records []ModelRecord
		diags   []*batch.Error
		err     error
	)

	switch ext {
	case ".csv":
		records, diags, err = l.loadCSV()
	case ".parquet":
		records, diags, err = l.loadParquet()
	default:
		return nil, nil, fmt.Errorf("unsupported file format: %s (supported: .csv, .parquet)", ext)
	}
	if err != nil {
		return nil, nil, err
	}

	// Duplicate model names are a data-entry error; the first row wins.
	seen := make(map[string]bool, len(records))
	unique := records[:0]
	for _, rec := range records {
		if seen[rec.Model] {
			diags = append(diags, batch.Errorf(batch.KindValidation, rec.Model, "duplicate model name"))
			continue
		}
		seen[rec.Model] = true
		unique = append(unique, rec)
	}

	slog.Debug("Finished loading model table", "path", l.tablePath, "records", len(unique), "rejected", len(diags))

	return unique, diags, nil
}

// loadCSV loads records from a CSV file with a header row
func (l *Loader) loadCSV() ([]ModelRecord, []*batch.Error, error) {
	slog.Debug("Opening CSV file", "path", l.tablePath)

	file, err := os.Open(l.tablePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open model table: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header row: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	var records []ModelRecord
	var diags []*batch.Error

	lineNum := 1
	for {
		lineNum++
		values, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				diags = append(diags, batch.Errorf(batch.KindValidation, rowID(header, values),
					"row %d has %d columns, expected %d", lineNum, len(values), len(header)))
				continue
			}
			return nil, nil, fmt.Errorf("error reading model table: %w", err)
		}

		row := make(map[string]string, len(header))
		for i, h := range header {
			row[h] = values[i]
		}

		rec, recErr := recordFromRow(row, lineNum)
		if recErr != nil {
			diags = append(diags, recErr)
			continue
		}
		records = append(records, rec)
	}

	slog.Debug("Finished reading CSV file", "total_records", len(records), "total_lines", lineNum)

	return records, diags, nil
}

// tableRow mirrors the CSV column set for parquet exports of the model
// table. All columns are text, exactly as entered in the spreadsheet.
type tableRow struct {
	Manufacturer  string `parquet:"Manufacturer,optional"`
	Model         string `parquet:"Model,optional"`
	GigCopper     string `parquet:"GigabitEthernet Copper,optional"`
	GigSFP        string `parquet:"GigabitEthernet SFP,optional"`
	GigCombo      string `parquet:"GigabitEthernet Combo,optional"`
	TwoGig        string `parquet:"TwoGigabitEthernet,optional"`
	TenCopper     string `parquet:"TenGigabitEthernet Copper,optional"`
	TenSFP        string `parquet:"TenGigabitEthernet SFP+,optional"`
	TenCombo      string `parquet:"TenGigabitEthernet Combo,optional"`
	OOB           string `parquet:"OOB,optional"`
	Stacking      string `parquet:"Stacking,optional"`
	Con0          string `parquet:"con0,optional"`
	Con1          string `parquet:"con1,optional"`
	Con2          string `parquet:"con2,optional"`
	PSU0          string `parquet:"psu0,optional"`
	Draw          string `parquet:"Draw,optional"`
	Weight        string `parquet:"Weight (pounds),optional"`
	UHeight       string `parquet:"U Height,optional"`
	FullDepth     string `parquet:"Full Depth,optional"`
	Comments      string `parquet:"Comments,optional"`
	FrontCrop     string `parquet:"Front Crop,optional"`
	RearCrop      string `parquet:"Rear Crop,optional"`
	FrontImageURL string `parquet:"Front Image URL,optional"`
	RearImageURL  string `parquet:"Rear Image URL,optional"`
}

func (t *tableRow) toRow() map[string]string {
	return map[string]string{
		ColManufacturer:  t.Manufacturer,
		ColModel:         t.Model,
		ColGigCopper:     t.GigCopper,
		ColGigSFP:        t.GigSFP,
		ColGigCombo:      t.GigCombo,
		ColTwoGig:        t.TwoGig,
		ColTenCopper:     t.TenCopper,
		ColTenSFP:        t.TenSFP,
		ColTenCombo:      t.TenCombo,
		ColOOB:           t.OOB,
		ColStacking:      t.Stacking,
		ColCon0:          t.Con0,
		ColCon1:          t.Con1,
		ColCon2:          t.Con2,
		ColPSU0:          t.PSU0,
		ColDraw:          t.Draw,
		ColWeight:        t.Weight,
		ColUHeight:       t.UHeight,
		ColFullDepth:     t.FullDepth,
		ColComments:      t.Comments,
		ColFrontCrop:     t.FrontCrop,
		ColRearCrop:      t.RearCrop,
		ColFrontImageURL: t.FrontImageURL,
		ColRearImageURL:  t.RearImageURL,
	}
}

// loadParquet loads records from a Parquet file
func (l *Loader) loadParquet() ([]ModelRecord, []*batch.Error, error) {
	slog.Debug("Opening Parquet file", "path", l.tablePath)

	file, err := os.Open(l.tablePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet file opened successfully", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[tableRow](pf)
	defer reader.Close()

	var records []ModelRecord
	var diags []*batch.Error
	rows := make([]tableRow, 128) // Read in batches

	rowNum := 0
	for {
		n, err := reader.Read(rows)
		for i := 0; i < n; i++ {
			rowNum++
			rec, recErr := recordFromRow(rows[i].toRow(), rowNum)
			if recErr != nil {
				diags = append(diags, recErr)
				continue
			}
			records = append(records, rec)
		}
		if err != nil {
			break
		}
	}

	slog.Debug("Finished reading Parquet file", "total_records", len(records))

	return records, diags, nil
}

// recordFromRow builds a ModelRecord from a header-named row. line is the
// 1-based input row number, used in diagnostics when the row has no model
// name to identify it by.
func recordFromRow(row map[string]string, line int) (ModelRecord, *batch.Error) {
	get := func(col string) string {
		return strings.TrimSpace(row[col])
	}

	rec := ModelRecord{
		Manufacturer: get(ColManufacturer),
		Model:        get(ColModel),
	}

	id := rec.Model
	if id == "" {
		id = fmt.Sprintf("row %d", line)
	}

	if rec.Model == "" {
		return rec, batch.Errorf(batch.KindValidation, id, "missing required field %q", ColModel)
	}
	if rec.Manufacturer == "" {
		return rec, batch.Errorf(batch.KindValidation, id, "missing required field %q", ColManufacturer)
	}

	counts := []struct {
		col string
		dst *int
	}{
		{ColGigCopper, &rec.GigCopper},
		{ColGigSFP, &rec.GigSFP},
		{ColGigCombo, &rec.GigCombo},
		{ColTwoGig, &rec.TwoGig},
		{ColTenCopper, &rec.TenCopper},
		{ColTenSFP, &rec.TenSFP},
		{ColTenCombo, &rec.TenCombo},
		{ColOOB, &rec.OOB},
	}
	for _, c := range counts {
		n, err := parseCount(get(c.col))
		if err != nil {
			return rec, batch.Errorf(batch.KindValidation, id, "column %q: %v", c.col, err)
		}
		*c.dst = n
	}

	rec.Stacking = parseBool(get(ColStacking))

	rec.Con0 = get(ColCon0)
	rec.Con1 = get(ColCon1)
	rec.Con2 = get(ColCon2)
	rec.PSU0 = get(ColPSU0)
	rec.Comments = get(ColComments)

	floats := []struct {
		col string
		dst **float64
	}{
		{ColDraw, &rec.MaxDraw},
		{ColWeight, &rec.WeightLbs},
		{ColUHeight, &rec.UHeight},
	}
	for _, f := range floats {
		v, err := parseFloat(get(f.col))
		if err != nil {
			return rec, batch.Errorf(batch.KindValidation, id, "column %q: %v", f.col, err)
		}
		*f.dst = v
	}

	if v := get(ColFullDepth); v != "" {
		b := parseBool(v)
		rec.FullDepth = &b
	}

	rec.FrontCrop = get(ColFrontCrop)
	rec.RearCrop = get(ColRearCrop)
	rec.FrontImageURL = get(ColFrontImageURL)
	rec.RearImageURL = get(ColRearImageURL)

	return rec, nil
}

// parseCount parses a port count cell; blank means zero ports.
func parseCount(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}

// parseFloat parses an optional numeric cell; blank means unset.
func parseFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return &v, nil
}

// parseBool treats "true" (case-insensitive) as true and everything else,
// including blank, as false.
func parseBool(s string) bool {
	return strings.EqualFold(s, "true")
}

// rowID digs the model name out of a malformed row for diagnostics, falling
// back to empty when the Model column is beyond the truncated row.
func rowID(header, values []string) string {
	for i, h := range header {
		if h == ColModel && i < len(values) {
			return strings.TrimSpace(values[i])
		}
	}
	return ""
}
