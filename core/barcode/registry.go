package barcode

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidRegistry is returned when descriptors conflict with each other.
var ErrInvalidRegistry = errors.New("invalid barcode registry")

const defaultCodeWidth = 2

// Registry is the table of barcode-capable record types.
// It is built once at startup and never mutated afterwards.
type Registry struct {
	ordered []Descriptor
	byCode  map[string]Descriptor
	byLabel map[string]Descriptor
	width   int
}

// NewRegistry builds a registry, keeping the given order.
// Labels and codes must be unique and all codes must share the same width.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{
		ordered: make([]Descriptor, 0, len(descriptors)),
		byCode:  make(map[string]Descriptor, len(descriptors)),
		byLabel: make(map[string]Descriptor, len(descriptors)),
	}

	for _, d := range descriptors {
		label, code := d.TypeLabel(), d.TypeCode()
		if label == "" || code == "" {
			return nil, fmt.Errorf("%w: descriptor with empty label or code (%q, %q)", ErrInvalidRegistry, label, code)
		}
		if _, dup := r.byLabel[label]; dup {
			return nil, fmt.Errorf("%w: duplicate type label %q", ErrInvalidRegistry, label)
		}
		if _, dup := r.byCode[code]; dup {
			return nil, fmt.Errorf("%w: duplicate type code %q", ErrInvalidRegistry, code)
		}

		width := utf8.RuneCountInString(code)
		if r.width == 0 {
			r.width = width
		} else if width != r.width {
			return nil, fmt.Errorf("%w: type code %q is %d characters wide, expected %d", ErrInvalidRegistry, code, width, r.width)
		}

		r.ordered = append(r.ordered, d)
		r.byCode[code] = d
		r.byLabel[label] = d
	}

	return r, nil
}

// Descriptors returns the descriptors in registration order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// ByCode returns the descriptor registered for a short type code.
func (r *Registry) ByCode(code string) (Descriptor, bool) {
	d, ok := r.byCode[code]
	return d, ok
}

// ByLabel returns the descriptor registered for a type label.
func (r *Registry) ByLabel(label string) (Descriptor, bool) {
	d, ok := r.byLabel[label]
	return d, ok
}

// Labels returns the registered type labels in registration order.
func (r *Registry) Labels() []string {
	labels := make([]string, 0, len(r.ordered))
	for _, d := range r.ordered {
		labels = append(labels, d.TypeLabel())
	}
	return labels
}

// CodeWidth returns the width shared by all type codes.
func (r *Registry) CodeWidth() int {
	if r.width == 0 {
		return defaultCodeWidth
	}
	return r.width
}
