package skilltest

import (
	"math"

	dErrors "github.com/ratto/EDaemonCore/pkg/domain-errors"
)

// AttributeModifierTable maps a skill's associated attribute key to an extra
// modifier delta. The mapping is game content, not engine policy: content
// owns the table, the engine only applies it. Keys absent from the table
// contribute nothing.
type AttributeModifierTable map[string]int

// Delta returns the modifier effect for an attribute key, 0 when unmapped.
func (t AttributeModifierTable) Delta(attribute string) int {
	return t[attribute]
}

// Aggregator reduces a ModifierSet (plus an optional attribute-derived delta)
// to a single signed integer. Pure and total apart from the defensive
// overflow guard, which is surfaced as an invariant violation rather than
// silently clamped.
type Aggregator struct {
	attributes AttributeModifierTable
}

// AggregatorOption configures an Aggregator.
type AggregatorOption func(*Aggregator)

// WithAttributeTable installs a content-supplied attribute modifier table.
func WithAttributeTable(table AttributeModifierTable) AggregatorOption {
	return func(a *Aggregator) {
		a.attributes = table
	}
}

// NewAggregator builds an Aggregator. Without options it sums plain
// modifier sets only.
func NewAggregator(opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate sums all values in the set; the empty set sums to 0.
func (a *Aggregator) Aggregate(mods ModifierSet) (int, error) {
	sum := 0
	for _, v := range mods.values {
		var err error
		sum, err = addChecked(sum, v)
		if err != nil {
			return 0, err
		}
	}
	return sum, nil
}

// AttributeDelta returns the configured delta for a skill's associated
// attribute key, 0 when no table is installed.
func (a *Aggregator) AttributeDelta(attribute string) int {
	if a.attributes == nil {
		return 0
	}
	return a.attributes.Delta(attribute)
}

// addChecked adds two ints, surfacing overflow instead of wrapping around.
func addChecked(a, b int) (int, error) {
	if b > 0 && a > math.MaxInt-b {
		return 0, dErrors.New(dErrors.CodeInternal, "modifier aggregation overflowed")
	}
	if b < 0 && a < math.MinInt-b {
		return 0, dErrors.New(dErrors.CodeInternal, "modifier aggregation underflowed")
	}
	return a + b, nil
}
