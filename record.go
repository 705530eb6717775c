package rntable

import "fmt"

// Record is a single finalized reservation, as handed over by the curation
// stage. Records carry the inputs of the payout derivation, never the payout
// itself: the derived value depends on the table-wide defaults and is
// recomputed by the readers.
type Record struct {
	// Name is the reserved name, 1 to MaxNameLen ASCII bytes, unique
	// across the table.
	Name string

	// Target is the fully-qualified domain the name resolves to,
	// 1 to MaxTargetLen ASCII bytes, ending with a trailing dot.
	Target string

	// Root marks a reservation of a top-level zone rather than a
	// second-level name.
	Root bool

	// Zeroed forces the payout to zero, e.g. for embargoed targets.
	Zeroed bool

	// Custom, if set, overrides the default payout value entirely.
	Custom *uint64
}

func (r *Record) validate() error {
	if len(r.Name) == 0 || len(r.Name) > MaxNameLen {
		return fmt.Errorf("rntable: name %q length must be 1-%d bytes", r.Name, MaxNameLen)
	}
	if len(r.Target) == 0 || len(r.Target) > MaxTargetLen {
		return fmt.Errorf("rntable: target of %q length must be 1-%d bytes", r.Name, MaxTargetLen)
	}
	return nil
}

func (r *Record) flags() byte {
	var f byte
	if r.Root {
		f |= flagRoot
	}
	if r.Zeroed {
		f |= flagZeroed
	}
	if r.Custom != nil {
		f |= flagCustom
	}
	return f
}

// --------------------------------------------------------------------

// Reservation is the result of a successful table lookup.
type Reservation struct {
	Name   string // the reserved name
	Target string // the target the name resolves to
	Value  uint64 // the derived payout value
	Root   bool   // true for top-level zone reservations
}

// The zeroed flag is applied before the custom override: a record carrying
// both resolves to the custom value. Keep this order, encoders and readers
// must agree on it bit for bit.
func resolveValue(flags byte, custom, nameValue, rootValue uint64) uint64 {
	value := nameValue
	if flags&flagRoot != 0 {
		value = rootValue
	}
	if flags&flagZeroed != 0 {
		value = 0
	}
	if flags&flagCustom != 0 {
		value = custom
	}
	return value
}
