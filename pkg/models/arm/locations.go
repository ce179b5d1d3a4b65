package arm

// LocationList is the payload returned by the subscription locations listing.
type LocationList struct {
	Value []Location `json:"value"`
}

type Location struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Type                string            `json:"type"`
	DisplayName         string            `json:"displayName"`
	RegionalDisplayName string            `json:"regionalDisplayName"`
	Metadata            *LocationMetadata `json:"metadata"`
}

// LocationMetadata carries the physical/geographic attribute block ARM nests
// under each location. Longitude/latitude arrive as strings on the wire.
type LocationMetadata struct {
	RegionType       string         `json:"regionType"`
	RegionCategory   string         `json:"regionCategory"`
	Geography        string         `json:"geography"`
	GeographyGroup   string         `json:"geographyGroup"`
	Longitude        string         `json:"longitude"`
	Latitude         string         `json:"latitude"`
	PhysicalLocation string         `json:"physicalLocation"`
	PairedRegion     []PairedRegion `json:"pairedRegion"`
}

// PairedRegion references the location paired with this one. ID is a full
// subscription-scoped resource identifier and must never leak into artifacts.
type PairedRegion struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}
