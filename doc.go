// SPDX-License-Identifier: MIT

// Package lvcollate collates witnesses of one text: it aligns every new
// witness against a variant graph of the witnesses already seen and merges
// it in, producing an alignment table of agreements, variants and
// omissions.
//
// What is in the box?
//
//	token/         tokens, comparators, normalizers, the tokenizer
//	witness/       XML witness documents as arena trees
//	variantgraph/  the reference graph: ranking, superbase, merge, table
//	matching/      unique / ambiguous / unmatched token classification
//	matrix/        the match matrix and its coordinates
//	island/        diagonal runs of matches
//	archipelago/   competing islands and the first non-conflicting version
//	decision/      weighted DAG of candidate links, minimum gaps, best path
//	linker/        one alignment pass: matrix → islands → version → links
//	collation/     sequential witness loop, independent runs in parallel
//
// config/, metrics/, store/, server/ and cmd/collate make up the service
// around the core.
//
// A pass in short:
//
//	refs, _ := g.Refs()
//	al, _ := linker.Align(refs, w.Tokens, token.Equality)
//	g.Merge(w, al)
//
// Core packages are synchronous and single-threaded; concurrency lives in
// collation.CollateAll and the HTTP server, one graph per run.
package lvcollate
