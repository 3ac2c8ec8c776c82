// Package contactcheck turns a continuous trajectory into a sequence of
// discrete collision queries: segments are subdivided until no gap exceeds the
// configured longest valid segment length, each sample is queried in temporal
// order, and non-empty contact sets are aggregated sparsely by sample ordinal.
package contactcheck
