package reports

import "pbshist/internal/models"

const unknownDescription = "Unknown event code"

// LegendEntry describes one histogram column.
type LegendEntry struct {
	Code        models.EventCode `json:"code"`
	Description string           `json:"description"`
}

// Legend returns one entry per code, in the given order. Codes outside the job mask
// get a generic description.
func Legend(codes []models.EventCode) []LegendEntry {
	entries := make([]LegendEntry, 0, len(codes))
	for _, code := range codes {
		description := code.Description()
		if !code.Known() {
			description = unknownDescription
		}
		entries = append(entries, LegendEntry{Code: code, Description: description})
	}
	return entries
}
