// SPDX-License-Identifier: MIT

// Package collation drives a collation run: witnesses are aligned one after
// the other against the variant graph built from all earlier witnesses and
// merged into it.
//
// Witnesses of one run are processed strictly in order, because every merge
// changes the reference the next witness is aligned against. CollateAll runs
// independent collations concurrently; each run owns its graph.
//
// Cancellation is checked between witnesses only; an abandoned run is
// discarded, never resumed.
package collation
