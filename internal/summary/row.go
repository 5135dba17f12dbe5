// internal/summary/row.go
package summary

import (
	"strucsum-core/dssp"

	"strucsum/pkg/api"
)

// StructureRow is one output record of the secondary-structure pipeline:
// the per-accession metrics joined with species labels and the provenance
// of the model that produced them.
type StructureRow struct {
	Accession string
	Abbr      string
	Status    string
	Source    string // "AF" | "SWM"
	Metrics   dssp.Metrics
}

// LabeledCharge is one output record of the charge-labeling pipeline.
type LabeledCharge struct {
	Name      string
	NetCharge float64
	Accession string
	Abbr      string
	Status    string
}

func toAPIStructure(r StructureRow) api.StructureSummaryV1 {
	return api.StructureSummaryV1{
		Accession: r.Accession,
		Abbr:      r.Abbr,
		Status:    r.Status,
		Source:    r.Source,
		NTotal:    r.Metrics.NTotal,
		NHelix:    r.Metrics.NHelix,
		NSheet:    r.Metrics.NSheet,
		NCoil:     r.Metrics.NCoil,
		FracHelix: r.Metrics.FracHelix,
		FracSheet: r.Metrics.FracSheet,
		FracCoil:  r.Metrics.FracCoil,
		MeanASA:   r.Metrics.MeanASA,
	}
}

func toAPILabeled(r LabeledCharge) api.LabeledChargeV1 {
	return api.LabeledChargeV1{
		Name:      r.Name,
		NetCharge: r.NetCharge,
		Accession: r.Accession,
		Abbr:      r.Abbr,
		Status:    r.Status,
	}
}
