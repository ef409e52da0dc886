package barcode

import "context"

// Record is a barcode-capable domain entity.
type Record interface {
	// TypeLabel returns the label of the record type (e.g. "part").
	TypeLabel() string
	// TypeCode returns the fixed-width short code of the record type (e.g. "PA").
	TypeCode() string
	// PrimaryKey returns the integer primary key.
	PrimaryKey() int
	// FormatMatchedResponse renders the record for a scan response.
	FormatMatchedResponse() map[string]any
}

// Descriptor describes one barcode-capable record type.
//
// The lookups return (nil, false, nil) when no record exists. A non-nil error
// means the underlying store failed.
type Descriptor interface {
	TypeLabel() string
	TypeCode() string
	FindByPrimaryKey(ctx context.Context, pk int) (Record, bool, error)
	FindByExternalHash(ctx context.Context, hash string) (Record, bool, error)
}

// HashAssigner is implemented by descriptors that can link external barcodes.
// An empty hash removes the link.
type HashAssigner interface {
	AssignHash(ctx context.Context, pk int, data, hash string) error
}

// Enumerator is implemented by descriptors that can list their primary keys.
type Enumerator interface {
	PrimaryKeys(ctx context.Context) ([]int, error)
}

// Strategy names the resolution strategy that produced a match.
type Strategy string

const (
	StrategyShort Strategy = "short"
	StrategyJSON  Strategy = "json"
	StrategyHash  Strategy = "hash"
)

// Match is the result of a successful scan.
type Match struct {
	Label    string
	Record   Record
	Strategy Strategy
}
