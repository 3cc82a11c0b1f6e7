package naver

import "encoding/json"

// searchEnvelope is the common top-level shape of list-returning endpoints.
// Pointer fields distinguish absent values from zero values so malformed
// payloads can be rejected instead of rendered as empty results.
type searchEnvelope struct {
	LastBuildDate string          `json:"lastBuildDate"`
	Total         *int            `json:"total"`
	Start         *int            `json:"start"`
	Display       *int            `json:"display"`
	Items         json.RawMessage `json:"items"`
}

// adultEnvelope is the response of the adult query classification endpoint.
type adultEnvelope struct {
	Adult *string `json:"adult"`
}

// errataEnvelope is the response of the errata correction endpoint.
type errataEnvelope struct {
	Errata *string `json:"errata"`
}
