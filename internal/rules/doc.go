// Package rules compiles CUE round configuration into scoring.Rules.
//
// A rules file is a plain CUE struct:
//
//	alphabet:       "PGYO"
//	expected_count: 5
//
// Files are unified with the embedded #Rules schema, so unknown fields and
// wrongly typed values are reported with their CUE position. Semantic checks
// (duplicate symbols, non-positive counts) are done separately by Validate,
// which collects every problem instead of stopping at the first.
package rules
