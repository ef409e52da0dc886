package barcode_test

import (
	"context"
	"fmt"
	"sync"

	"inventory-manager/core/barcode"
)

type fakeRecord struct {
	label string
	code  string
	pk    int
}

func (r *fakeRecord) TypeLabel() string { return r.label }
func (r *fakeRecord) TypeCode() string  { return r.code }
func (r *fakeRecord) PrimaryKey() int   { return r.pk }

func (r *fakeRecord) FormatMatchedResponse() map[string]any {
	return map[string]any{"pk": r.pk}
}

// fakeDescriptor is an in-memory descriptor keyed by primary key and linked hash.
type fakeDescriptor struct {
	label   string
	code    string
	records map[int]*fakeRecord
	hashes  map[string]int
	err     error

	mu         sync.Mutex
	pkLookups  []int
	hashLookup []string
}

func newFakeDescriptor(label, code string, pks ...int) *fakeDescriptor {
	d := &fakeDescriptor{
		label:   label,
		code:    code,
		records: make(map[int]*fakeRecord),
		hashes:  make(map[string]int),
	}
	for _, pk := range pks {
		d.records[pk] = &fakeRecord{label: label, code: code, pk: pk}
	}
	return d
}

func (d *fakeDescriptor) link(hash string, pk int) *fakeDescriptor {
	d.hashes[hash] = pk
	return d
}

func (d *fakeDescriptor) TypeLabel() string { return d.label }
func (d *fakeDescriptor) TypeCode() string  { return d.code }

func (d *fakeDescriptor) FindByPrimaryKey(ctx context.Context, pk int) (barcode.Record, bool, error) {
	d.mu.Lock()
	d.pkLookups = append(d.pkLookups, pk)
	d.mu.Unlock()

	if d.err != nil {
		return nil, false, d.err
	}
	rec, ok := d.records[pk]
	if !ok {
		return nil, false, nil
	}
	return rec, true, nil
}

func (d *fakeDescriptor) FindByExternalHash(ctx context.Context, hash string) (barcode.Record, bool, error) {
	d.mu.Lock()
	d.hashLookup = append(d.hashLookup, hash)
	d.mu.Unlock()

	if d.err != nil {
		return nil, false, d.err
	}
	pk, ok := d.hashes[hash]
	if !ok {
		return nil, false, nil
	}
	return d.records[pk], true, nil
}

func (d *fakeDescriptor) record(pk int) *fakeRecord {
	rec, ok := d.records[pk]
	if !ok {
		panic(fmt.Sprintf("no %s %d", d.label, pk))
	}
	return rec
}
