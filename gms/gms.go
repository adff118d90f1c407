// Package gms holds the gas/minerals/supply resource triple used to price units.
package gms

import "fmt"

// Gms is a price or a budget. Supply is in half-supply units, the way the
// engine reports it (a Zergling costs 1, a Marine 2).
type Gms struct {
	Minerals int `json:"minerals" yaml:"minerals"`
	Gas      int `json:"gas" yaml:"gas"`
	Supply   int `json:"supply" yaml:"supply"`
}

func (g Gms) Add(o Gms) Gms {
	return Gms{Minerals: g.Minerals + o.Minerals, Gas: g.Gas + o.Gas, Supply: g.Supply + o.Supply}
}

func (g Gms) Sub(o Gms) Gms {
	return Gms{Minerals: g.Minerals - o.Minerals, Gas: g.Gas - o.Gas, Supply: g.Supply - o.Supply}
}

func (g Gms) Scale(k int) Gms {
	return Gms{Minerals: g.Minerals * k, Gas: g.Gas * k, Supply: g.Supply * k}
}

// Div divides component-wise. A zero component in o panics, same as integer division.
func (g Gms) Div(o Gms) Gms {
	return Gms{Minerals: g.Minerals / o.Minerals, Gas: g.Gas / o.Gas, Supply: g.Supply / o.Supply}
}

// IsZero reports whether every component is zero.
func (g Gms) IsZero() bool { return g == Gms{} }

// leOr0 treats a non-positive requirement as always satisfied.
func leOr0(a, b int) bool {
	return a <= 0 || a <= b
}

// Compare is a partial order: g is "less" than o when every positive
// component of g is covered by o. ok is false when neither side covers the other.
func (g Gms) Compare(o Gms) (cmp int, ok bool) {
	switch {
	case g == o:
		return 0, true
	case leOr0(g.Minerals, o.Minerals) && leOr0(g.Gas, o.Gas) && leOr0(g.Supply, o.Supply):
		return -1, true
	case leOr0(o.Minerals, g.Minerals) && leOr0(o.Gas, g.Gas) && leOr0(o.Supply, g.Supply):
		return 1, true
	}
	return 0, false
}

func (g Gms) Equal(o Gms) bool { return g == o }

func (g Gms) Less(o Gms) bool {
	c, ok := g.Compare(o)
	return ok && c < 0
}

func (g Gms) LessOrEqual(o Gms) bool {
	c, ok := g.Compare(o)
	return ok && c <= 0
}

func (g Gms) Greater(o Gms) bool {
	c, ok := g.Compare(o)
	return ok && c > 0
}

func (g Gms) GreaterOrEqual(o Gms) bool {
	c, ok := g.Compare(o)
	return ok && c >= 0
}

// CheckedSub always subtracts o from g and reports whether g covered o beforehand.
// Budget code relies on the subtraction happening even when it goes negative.
func (g *Gms) CheckedSub(o Gms) bool {
	ok := o.LessOrEqual(*g)
	*g = g.Sub(o)
	return ok
}

func (g Gms) String() string {
	return fmt.Sprintf("m: %d, g: %d, s: %d", g.Minerals, g.Gas, g.Supply)
}
