package domain

import "strings"

// GlobalScope is the location marker providers use for region-independent
// resource types. It also shows up as a pseudo-region in some directories and
// is never assessed.
const GlobalScope = "Global"

// Region is the canonical directory entry for one Azure region. PairedRegion
// holds the bare region code of the pair, never a subscription-scoped ID.
type Region struct {
	Code             string `json:"name"`
	DisplayName      string `json:"displayName"`
	RegionType       string `json:"regionType,omitempty"`
	RegionCategory   string `json:"regionCategory,omitempty"`
	Geography        string `json:"geography,omitempty"`
	GeographyGroup   string `json:"geographyGroup,omitempty"`
	PhysicalLocation string `json:"physicalLocation,omitempty"`
	Latitude         string `json:"latitude,omitempty"`
	Longitude        string `json:"longitude,omitempty"`
	PairedRegion     string `json:"pairedRegion,omitempty"`
}

// IsGlobal reports whether the entry is the pseudo-region used for
// region-independent placement.
func (r Region) IsGlobal() bool {
	return strings.EqualFold(r.DisplayName, GlobalScope) || strings.EqualFold(r.Code, GlobalScope)
}

// RegionDirectory resolves between region codes and display names. Regions is
// sorted by display name.
type RegionDirectory struct {
	Regions []Region

	byCode    map[string]Region
	byDisplay map[string]Region
}

func NewRegionDirectory(regions []Region) *RegionDirectory {
	dir := &RegionDirectory{
		Regions:   regions,
		byCode:    make(map[string]Region, len(regions)),
		byDisplay: make(map[string]Region, len(regions)),
	}
	for _, r := range regions {
		dir.byCode[strings.ToLower(r.Code)] = r
		dir.byDisplay[strings.ToLower(r.DisplayName)] = r
	}
	return dir
}

func (d *RegionDirectory) ByCode(code string) (Region, bool) {
	r, ok := d.byCode[strings.ToLower(code)]
	return r, ok
}

func (d *RegionDirectory) ByDisplayName(name string) (Region, bool) {
	r, ok := d.byDisplay[strings.ToLower(name)]
	return r, ok
}

// DisplayNameFor translates a region code into its display name, falling back
// to the code itself when the directory has no entry for it.
func (d *RegionDirectory) DisplayNameFor(code string) string {
	if r, ok := d.ByCode(code); ok {
		return r.DisplayName
	}
	return code
}

// DisplayNames returns the display names of every directory entry, in
// directory order.
func (d *RegionDirectory) DisplayNames() []string {
	names := make([]string, 0, len(d.Regions))
	for _, r := range d.Regions {
		names = append(names, r.DisplayName)
	}
	return names
}

// AssessableRegions returns the directory entries minus any global
// pseudo-region, preserving directory order.
func (d *RegionDirectory) AssessableRegions() []Region {
	regions := make([]Region, 0, len(d.Regions))
	for _, r := range d.Regions {
		if r.IsGlobal() {
			continue
		}
		regions = append(regions, r)
	}
	return regions
}
