// Package buffer implements the line store that backs a foldline display map.
//
// Coordinates are 0-based (Row, GraphemeCol): rows are logical lines and
// columns count grapheme clusters. Every offset conversion (grapheme, rune,
// byte, UTF-16) is expressed against that unit and rejects offsets that land
// inside a cluster.
// Ranges are half-open selections in document coordinates: [Start, End).
package buffer
