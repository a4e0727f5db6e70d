package img2pdf

import (
	"fmt"

	"github.com/alnah/go-img2pdf/internal/mapping"
)

// Overrides holds per-image layout overrides keyed by base filename. Lookups
// are exact-match; a missing key falls back to the global default. The tables
// are built once before layout begins and never mutated during a run.
type Overrides struct {
	Sizes     map[string]PageSize
	Margins   map[string]Margins
	Rotations map[string]Rotation
}

// PageSizeFor returns the page size override for name, or def if absent.
func (o *Overrides) PageSizeFor(name string, def PageSize) PageSize {
	if o == nil {
		return def
	}
	if v, ok := o.Sizes[name]; ok {
		return v
	}
	return def
}

// MarginsFor returns the margins override for name, or def if absent.
func (o *Overrides) MarginsFor(name string, def Margins) Margins {
	if o == nil {
		return def
	}
	if v, ok := o.Margins[name]; ok {
		return v
	}
	return def
}

// RotationFor returns the rotation override for name, or def if absent.
func (o *Overrides) RotationFor(name string, def Rotation) Rotation {
	if o == nil {
		return def
	}
	if v, ok := o.Rotations[name]; ok {
		return v
	}
	return def
}

// ParsePageSizeMap builds a page-size override table from a CSV path or
// inline mapping string, e.g. "scan1.jpg:210x297,scan2.jpg:A5".
func ParsePageSizeMap(src string) (map[string]PageSize, error) {
	entries, err := mapping.Parse(src)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		return nil, nil
	}
	out := make(map[string]PageSize, len(entries))
	for _, e := range entries {
		ps, err := ParsePageSize(e.Value)
		if err != nil {
			return nil, fmt.Errorf("%w (line %d, key %q)", err, e.Line, e.Key)
		}
		out[e.Key] = ps
	}
	return out, nil
}

// ParseMarginsMap builds a margins override table from a CSV path or inline
// mapping string, e.g. "scan1.jpg:10,scan2.jpg:8x12x8x12".
func ParseMarginsMap(src string) (map[string]Margins, error) {
	entries, err := mapping.Parse(src)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		return nil, nil
	}
	out := make(map[string]Margins, len(entries))
	for _, e := range entries {
		m, err := ParseMargins(e.Value)
		if err != nil {
			return nil, fmt.Errorf("%w (line %d, key %q)", err, e.Line, e.Key)
		}
		out[e.Key] = m
	}
	return out, nil
}

// ParseRotationMap builds a rotation override table from a CSV path or inline
// mapping string, e.g. "scan2.jpg:90".
func ParseRotationMap(src string) (map[string]Rotation, error) {
	entries, err := mapping.Parse(src)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		return nil, nil
	}
	out := make(map[string]Rotation, len(entries))
	for _, e := range entries {
		r, err := ParseRotation(e.Value)
		if err != nil {
			return nil, fmt.Errorf("%w (line %d, key %q)", err, e.Line, e.Key)
		}
		out[e.Key] = r
	}
	return out, nil
}
