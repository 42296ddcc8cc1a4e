package ec

import "github.com/smartcontractkit/ecgfp/internal/codec"

type Points []*Point

// p.Sum() returns the sum of all points in p. If p is empty, Sum returns nil.
func (p Points) Sum() *Point {
	var result *Point
	for _, pᵢ := range p {
		if result == nil {
			result = pᵢ.Clone()
		} else {
			result.Add(result, pᵢ)
		}
	}
	return result
}

// MarshalTo writes the number of points followed by each point to the provided codec.Target.
func (p Points) MarshalTo(target codec.Target) {
	target.WriteInt(len(p))
	for _, pᵢ := range p {
		pᵢ.MarshalTo(target)
	}
}

// UnmarshalPoints returns a function reading Points of group g written by Points.MarshalTo, for use with
// codec.UnmarshalUsing(...).
func UnmarshalPoints(g *Group) func(codec.Source) Points {
	return func(src codec.Source) Points {
		n := src.ReadInt()
		if n < 0 || n > src.Available() {
			panic("invalid number of points")
		}
		result := make(Points, n)
		for i := range result {
			result[i] = g.Identity().UnmarshalFrom(src)
		}
		return result
	}
}
