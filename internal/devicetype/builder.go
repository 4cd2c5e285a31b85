package devicetype

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/devtype-tools/devtypegen/internal/dataset"
)

// Crop views derived from each vendor photo.
const (
	ViewFront = "front"
	ViewRear  = "rear"
)

// Views lists the crop views in output order.
var Views = []string{ViewFront, ViewRear}

const catalyst1300Datasheet = "[Catalyst 1300 Datasheet](https://www.cisco.com/c/en/us/products/collateral/switches/catalyst-1300-series-switches/nb-06-cat1300-ser-data-sheet-cte-en.html)"

// Display-name rewrites applied to the model field only; part_number keeps
// the raw model string. This matches the naming convention used by existing
// Catalyst submissions in the library.
var displayRewrites = map[string]string{
	"C1300": "Catalyst 1300",
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a string to a slug safe for filenames and the document
// slug field: lowercased, non-alphanumeric runs collapsed to single dashes,
// leading/trailing dashes stripped.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// DeviceSlug derives the document slug from the record identity.
func DeviceSlug(rec *dataset.ModelRecord) string {
	return Slugify(rec.Manufacturer) + "-" + Slugify(rec.Model)
}

// Filename derives the definition filename for a record. The same record
// always maps to the same file, so re-running overwrites in place.
func Filename(rec *dataset.ModelRecord) string {
	return strings.ToUpper(rec.Model) + ".yaml"
}

// ImageFilename derives the elevation-image filename for a record and view.
func ImageFilename(rec *dataset.ModelRecord, view string) string {
	return fmt.Sprintf("%s.%s.png", DeviceSlug(rec), view)
}

// Build renders one record into a definition document. frontImage and
// rearImage report whether the matching elevation images exist so the
// document can declare them.
//
// Unset optional fields are omitted from the document; u_height defaults to
// 1.0 and is_full_depth to false, which the schema requires explicitly.
func Build(rec *dataset.ModelRecord, frontImage, rearImage bool) *Device {
	dev := &Device{
		Manufacturer: rec.Manufacturer,
		Model:        displayName(rec.Model),
		Slug:         DeviceSlug(rec),
		PartNumber:   rec.Model,
		UHeight:      1.0,
		FrontImage:   frontImage,
		RearImage:    rearImage,
		Comments:     rec.Comments,
		Interfaces:   buildInterfaces(rec),
	}

	if rec.UHeight != nil {
		dev.UHeight = *rec.UHeight
	}
	if rec.FullDepth != nil {
		dev.IsFullDepth = *rec.FullDepth
	}
	if rec.Comments == "" && strings.EqualFold(rec.Manufacturer, "Cisco") {
		dev.Comments = catalyst1300Datasheet
	}
	if rec.WeightLbs != nil {
		dev.Weight = rec.WeightLbs
		dev.WeightUnit = "lb"
	}

	for _, c := range rec.ConsoleTypes() {
		dev.ConsolePorts = append(dev.ConsolePorts, ConsolePort{Name: c[0], Type: c[1]})
	}

	if rec.PSU0 != "" {
		port := PowerPort{Name: "PSU0", Type: rec.PSU0}
		if rec.MaxDraw != nil {
			draw := int(math.Round(*rec.MaxDraw))
			port.MaximumDraw = &draw
		}
		dev.PowerPorts = append(dev.PowerPorts, port)
	}

	return dev
}

func displayName(model string) string {
	for from, to := range displayRewrites {
		model = strings.ReplaceAll(model, from, to)
	}
	return model
}

// buildInterfaces synthesizes the interface list from the port counts.
// Stacking models use member/slot/port naming (GigabitEthernet1/0/N);
// standalone models number ports flat. 1G, multi-gig and combo ports share
// one numbering sequence, 10G ports another.
func buildInterfaces(rec *dataset.ModelRecord) []Interface {
	base1G := "GigabitEthernet"
	base10G := "TenGigabitEthernet"
	if rec.Stacking {
		base1G += "1/0/"
		base10G += "1/0/"
	}

	// PoE models carry a P- (or FP-) marker in the model name.
	poe := strings.Contains(strings.ToUpper(rec.Model), "P-")

	var ifaces []Interface
	idx1G := 1
	idx10G := 1

	for i := 0; i < rec.GigCopper; i++ {
		iface := Interface{
			Name:    fmt.Sprintf("%s%d", base1G, idx1G),
			Type:    "1000base-t",
			Enabled: true,
		}
		if poe {
			iface.PoeMode = "pse"
			iface.PoeType = "type2-ieee802.3at"
		}
		ifaces = append(ifaces, iface)
		idx1G++
	}

	for i := 0; i < rec.GigSFP; i++ {
		ifaces = append(ifaces, Interface{
			Name:    fmt.Sprintf("%s%d", base1G, idx1G),
			Type:    "1000base-x-sfp",
			Enabled: true,
		})
		idx1G++
	}

	for i := 0; i < rec.GigCombo; i++ {
		ifaces = append(ifaces, Interface{
			Name:        fmt.Sprintf("%s%d", base1G, idx1G),
			Type:        "1000base-x-sfp",
			Description: "SFP/RJ45 Combo",
			Enabled:     true,
		})
		idx1G++
	}

	// Multi-gig ports continue the 1G numbering.
	for i := 0; i < rec.TwoGig; i++ {
		ifaces = append(ifaces, Interface{
			Name:    fmt.Sprintf("%s%d", base1G, idx1G),
			Type:    "2.5gbase-t",
			Enabled: true,
		})
		idx1G++
	}

	for i := 0; i < rec.TenCopper; i++ {
		ifaces = append(ifaces, Interface{
			Name:    fmt.Sprintf("%s%d", base10G, idx10G),
			Type:    "10gbase-t",
			Enabled: true,
		})
		idx10G++
	}

	for i := 0; i < rec.TenSFP; i++ {
		ifaces = append(ifaces, Interface{
			Name:    fmt.Sprintf("%s%d", base10G, idx10G),
			Type:    "10gbase-x-sfpp",
			Enabled: true,
		})
		idx10G++
	}

	for i := 0; i < rec.TenCombo; i++ {
		ifaces = append(ifaces, Interface{
			Name:        fmt.Sprintf("%s%d", base10G, idx10G),
			Type:        "10gbase-x-sfpp",
			Description: "SFP+/RJ45 Combo",
			Enabled:     true,
		})
		idx10G++
	}

	if rec.OOB > 0 {
		mgmt := true
		ifaces = append(ifaces, Interface{
			Name:     "OOB",
			Type:     "1000base-t",
			Enabled:  true,
			MgmtOnly: &mgmt,
		})
	}

	// Default management VLAN interface.
	mgmt := false
	ifaces = append(ifaces, Interface{
		Name:     "Vlan1",
		Type:     "virtual",
		Enabled:  true,
		MgmtOnly: &mgmt,
	})

	return ifaces
}
