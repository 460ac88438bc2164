// SPDX-License-Identifier: MIT

// Package gatherer reduces the comparison of two multi-valued cells (two
// non-empty sequences of concepts) to one scalar using a bound measure.
//
// Variants:
//
//	Identity   ("id")    - both sequences must hold exactly one value, unless
//	                       the measure is multi-valued and implements
//	                       measure.SetComparer, which then gets the sequences.
//	First      ("first") - compares only the first value of each sequence.
//	                       Deterministic but lossy.
//	SymMaxMean ("smm")   - for each a in first take max_b Compare(a,b) and
//	                       average; likewise for each b in second with
//	                       Compare(b,a); return the mean of both averages.
//
// SymMaxMean(x,y) equals SymMaxMean(y,x) for any measure, since both
// orders evaluate the same two directional averages. It reduces to
// Compare(a,b) for two singletons only when the measure is symmetric; with an
// asymmetric measure it returns (Compare(a,b)+Compare(b,a))/2. Identity and
// First keep the measure's argument order, so they yield a non-symmetric
// column matrix whenever the measure is asymmetric.
//
// A gatherer must be bound with SetMeasure before Gather is called;
// otherwise Gather fails with ErrUnbound. Gather only reads its state, so a
// bound gatherer may be shared by concurrent callers.
package gatherer
