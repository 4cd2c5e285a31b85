package dataset

// Column names form the schema contract with the input table. Unknown extra
// columns are ignored; missing optional columns leave the field unset.
const (
	ColManufacturer = "Manufacturer"
	ColModel        = "Model"

	ColGigCopper = "GigabitEthernet Copper"
	ColGigSFP    = "GigabitEthernet SFP"
	ColGigCombo  = "GigabitEthernet Combo"
	ColTwoGig    = "TwoGigabitEthernet"
	ColTenCopper = "TenGigabitEthernet Copper"
	ColTenSFP    = "TenGigabitEthernet SFP+"
	ColTenCombo  = "TenGigabitEthernet Combo"
	ColOOB       = "OOB"
	ColStacking  = "Stacking"

	ColCon0 = "con0"
	ColCon1 = "con1"
	ColCon2 = "con2"

	ColPSU0 = "psu0"
	ColDraw = "Draw"

	ColWeight    = "Weight (pounds)"
	ColUHeight   = "U Height"
	ColFullDepth = "Full Depth"
	ColComments  = "Comments"

	ColFrontCrop = "Front Crop"
	ColRearCrop  = "Rear Crop"

	ColFrontImageURL = "Front Image URL"
	ColRearImageURL  = "Rear Image URL"
)

// ModelRecord is one row of the model table: the identity of a switch model
// plus its physical and electrical attributes. Records are built once at load
// time and never mutated.
//
// Pointer fields distinguish an unset cell from an explicit zero; the output
// schema omits unset fields entirely.
type ModelRecord struct {
	Manufacturer string
	Model        string

	// Port counts; a blank cell means the model has none of that port type.
	GigCopper int
	GigSFP    int
	GigCombo  int
	TwoGig    int
	TenCopper int
	TenSFP    int
	TenCombo  int
	OOB       int

	// Stacking switches use the member/slot/port interface naming scheme.
	Stacking bool

	// Console port types, empty when the port is absent.
	Con0 string
	Con1 string
	Con2 string

	// Power inlet type and maximum draw in watts.
	PSU0    string
	MaxDraw *float64

	WeightLbs *float64
	UHeight   *float64
	FullDepth *bool
	Comments  string

	// Per-model crop overrides, "left,top,right,bottom" in source pixels.
	FrontCrop string
	RearCrop  string

	// Vendor photo sources for fetch-images.
	FrontImageURL string
	RearImageURL  string
}

// ConsoleTypes returns the configured console port name/type pairs in
// declaration order.
func (r *ModelRecord) ConsoleTypes() [][2]string {
	var ports [][2]string
	for _, c := range [][2]string{{"con0", r.Con0}, {"con1", r.Con1}, {"con2", r.Con2}} {
		if c[1] != "" {
			ports = append(ports, c)
		}
	}
	return ports
}

// CropOverride returns the raw crop override cell for the given view
// ("front" or "rear"), or an empty string when none is set.
func (r *ModelRecord) CropOverride(view string) string {
	switch view {
	case "front":
		return r.FrontCrop
	case "rear":
		return r.RearCrop
	}
	return ""
}

// ImageURL returns the vendor photo URL for the given view, if any.
func (r *ModelRecord) ImageURL(view string) string {
	switch view {
	case "front":
		return r.FrontImageURL
	case "rear":
		return r.RearImageURL
	}
	return ""
}
