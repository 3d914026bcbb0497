// SPDX-License-Identifier: MIT

// Package linker is the alignment entry point: it links the tokens of one
// witness to vertices of the ranked reference structure.
//
// One pass runs:
//
//  1. matrix.Build on the reference and the witness tokens;
//  2. island.Detect on the ranked matches;
//  3. archipelago first version;
//  4. when the matcher saw ambiguous tokens and decision graphs are
//     enabled, decision.Build and decision.Solve; the solved path replaces
//     the version when it has strictly fewer gaps, or as many gaps and more
//     mapped tokens;
//  5. the chosen coordinates become the Alignment, keeping a coordinate
//     only when neither its row nor its column has been claimed.
//
// The resulting Alignment is injective on both sides. Tokens missing from
// it are additions or omissions for the merge step to handle.
//
// Link is synchronous and pure apart from logging and metrics; a Linker may
// be shared by goroutines.
package linker
