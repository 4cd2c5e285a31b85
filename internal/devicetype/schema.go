package devicetype

// Key names in this file are the devicetype-library schema contract and are
// reproduced verbatim; field order matches the convention used by existing
// library submissions.

// Device is one device-type definition document.
type Device struct {
	Manufacturer string        `yaml:"manufacturer"`
	Model        string        `yaml:"model"`
	Slug         string        `yaml:"slug"`
	PartNumber   string        `yaml:"part_number"`
	UHeight      float64       `yaml:"u_height"`
	IsFullDepth  bool          `yaml:"is_full_depth"`
	FrontImage   bool          `yaml:"front_image"`
	RearImage    bool          `yaml:"rear_image"`
	Comments     string        `yaml:"comments,omitempty"`
	Weight       *float64      `yaml:"weight,omitempty"`
	WeightUnit   string        `yaml:"weight_unit,omitempty"`
	Interfaces   []Interface   `yaml:"interfaces"`
	ConsolePorts []ConsolePort `yaml:"console-ports,omitempty"`
	PowerPorts   []PowerPort   `yaml:"power-ports,omitempty"`
}

// Interface is one network interface entry.
type Interface struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description,omitempty"`
	Enabled     bool   `yaml:"enabled"`
	PoeMode     string `yaml:"poe_mode,omitempty"`
	PoeType     string `yaml:"poe_type,omitempty"`
	MgmtOnly    *bool  `yaml:"mgmt_only,omitempty"`
}

// ConsolePort is one console port entry.
type ConsolePort struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// PowerPort is one power inlet entry.
type PowerPort struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	MaximumDraw *int   `yaml:"maximum_draw,omitempty"`
}
