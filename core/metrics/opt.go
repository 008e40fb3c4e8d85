// core/metrics/opt.go
package metrics

// Opt is an optional percentage or base-pair value. "Not reported" and
// "reported as zero" are different facts in the source tables, so absence is
// carried explicitly instead of as a NaN sentinel.
type Opt struct {
	Value   float64
	Present bool
}

// Some wraps a present value.
func Some(v float64) Opt { return Opt{Value: v, Present: true} }

// None is the absent value.
func None() Opt { return Opt{} }

// Or returns the value when present, otherwise def.
func (o Opt) Or(def float64) float64 {
	if o.Present {
		return o.Value
	}
	return def
}
