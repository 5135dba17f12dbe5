// pkg/api/summary_v1.go
package api

// StructureSummaryV1 is the stable JSON row schema for per-accession
// secondary-structure summaries. Keep fields, names, and types stable.
// Add new fields only with ",omitempty".
type StructureSummaryV1 struct {
	Accession string  `json:"accession"`
	Abbr      string  `json:"abbr"`
	Status    string  `json:"status"`
	Source    string  `json:"source"` // "AF" | "SWM"
	NTotal    int     `json:"n_total"`
	NHelix    int     `json:"n_helix"`
	NSheet    int     `json:"n_sheet"`
	NCoil     int     `json:"n_coil"`
	FracHelix float64 `json:"frac_helix"`
	FracSheet float64 `json:"frac_sheet"`
	FracCoil  float64 `json:"frac_coil"`
	MeanASA   float64 `json:"mean_asa"`
}

// LabeledChargeV1 is the stable JSON row schema for species-labeled net
// charges.
type LabeledChargeV1 struct {
	Name      string  `json:"name"`
	NetCharge float64 `json:"net_charge"`
	Accession string  `json:"accession"`
	Abbr      string  `json:"abbr"`
	Status    string  `json:"status"`
}
