package arm

import "encoding/json"

// GraphQueryRequest is the POST body accepted by Azure Resource Graph.
type GraphQueryRequest struct {
	Subscriptions []string           `json:"subscriptions"`
	Query         string             `json:"query"`
	Options       *GraphQueryOptions `json:"options,omitempty"`
}

type GraphQueryOptions struct {
	ResultFormat string `json:"resultFormat,omitempty"`
	Top          *int32 `json:"$top,omitempty"`
	SkipToken    string `json:"$skipToken,omitempty"`
}

// GraphQueryResponse keeps Data raw so callers can decode row objects into
// whatever shape their query projects.
type GraphQueryResponse struct {
	TotalRecords int64           `json:"totalRecords"`
	Count        int64           `json:"count"`
	SkipToken    string          `json:"$skipToken"`
	Data         json.RawMessage `json:"data"`
}
