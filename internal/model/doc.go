// Package model is the in-memory document model the compare engine operates
// on: sections made of paragraphs and tables, plus the numbering, style, and
// document-property side tables an OOXML word-processing package carries.
//
// Every exported type in this package is passive data. Beyond deep-clone,
// text extraction (PlainText/NormalizedText), paragraph flattening, and the
// ForDeletion/ForInsertion/ForMove formatting helpers, behavior lives
// elsewhere (internal/text, internal/similarity, internal/align,
// internal/worddiff, internal/redline) so the model itself stays a plain
// value graph that is cheap to deep-clone and trivial to compare.
package model
