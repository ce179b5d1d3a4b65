package arm

// SQLLocationCapabilities is the per-region Microsoft.Sql capability tree.
// Database SKUs hang off supportedServerVersions, managed instance SKUs off
// supportedManagedInstanceVersions; the include query parameter decides which
// branch is populated.
type SQLLocationCapabilities struct {
	Name                             string               `json:"name"`
	Status                           string               `json:"status"`
	SupportedServerVersions          []SQLServerVersion   `json:"supportedServerVersions"`
	SupportedManagedInstanceVersions []SQLInstanceVersion `json:"supportedManagedInstanceVersions"`
}

type SQLServerVersion struct {
	Name              string       `json:"name"`
	Status            string       `json:"status"`
	SupportedEditions []SQLEdition `json:"supportedEditions"`
}

type SQLEdition struct {
	Name                            string                     `json:"name"`
	Status                          string                     `json:"status"`
	SupportedServiceLevelObjectives []SQLServiceLevelObjective `json:"supportedServiceLevelObjectives"`
}

type SQLServiceLevelObjective struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Status string  `json:"status"`
	SKU    *SQLSku `json:"sku"`
}

// SQLSku is the four-attribute SKU descriptor shared by database service
// level objectives.
type SQLSku struct {
	Name     string `json:"name"`
	Tier     string `json:"tier"`
	Family   string `json:"family"`
	Capacity int32  `json:"capacity"`
}

type SQLInstanceVersion struct {
	Name              string               `json:"name"`
	Status            string               `json:"status"`
	SupportedEditions []SQLInstanceEdition `json:"supportedEditions"`
}

type SQLInstanceEdition struct {
	Name              string              `json:"name"`
	Status            string              `json:"status"`
	SupportedFamilies []SQLInstanceFamily `json:"supportedFamilies"`
}

type SQLInstanceFamily struct {
	Name                  string          `json:"name"`
	SKU                   string          `json:"sku"`
	Status                string          `json:"status"`
	SupportedVcoresValues []SQLVcoreValue `json:"supportedVcoresValues"`
}

type SQLVcoreValue struct {
	Name   string `json:"name"`
	Value  int32  `json:"value"`
	Status string `json:"status"`
}
