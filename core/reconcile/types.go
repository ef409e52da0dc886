package reconcile

import (
	"context"
	"time"
)

// Link is an external barcode stored on a record.
type Link struct {
	PK   int    `json:"pk" gorm:"column:id"`
	Data string `json:"barcode_data" gorm:"column:barcode_data"`
	Hash string `json:"barcode_hash" gorm:"column:barcode_hash"`
}

// Source lists the linked barcodes of one record type.
type Source interface {
	TypeLabel() string
	LinkedBarcodes(ctx context.Context) ([]Link, error)
}

// ReconcileResult represents the reconciliation output for a single linked record.
type ReconcileResult struct {
	// Label is the record type label.
	Label string `json:"label"`

	// PK is the record primary key.
	PK int `json:"pk"`

	// Hash is the stored barcode hash.
	Hash string `json:"barcode_hash"`

	// Mismatch describes each problem found, e.g. "hash: stored=ab12 computed=cd34".
	Mismatch []string `json:"mismatch"`
}

// OK reports whether the link has no problems.
func (r ReconcileResult) OK() bool {
	return len(r.Mismatch) == 0
}

// Report is the result of a full reconciliation.
type Report struct {
	// Checked is the number of linked records inspected.
	Checked int `json:"checked"`

	// Problems holds the results with at least one mismatch.
	Problems []ReconcileResult `json:"problems"`

	// Built is when the report was computed.
	Built time.Time `json:"built"`
}
