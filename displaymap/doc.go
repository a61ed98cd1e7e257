// Package displaymap maps buffer coordinates to display coordinates for a
// text input.
//
// The transform is a chain of two layers:
//
//	buffer --WrapMap--> wrap --FoldMap--> display
//
// WrapMap soft-wraps each buffer line to a cell budget. FoldMap collapses
// fold ranges to a one-column marker, joining the text after a fold to the
// row the fold starts on. DisplayMap owns both layers and is the only type a
// widget needs.
//
// Columns in BufferPos are grapheme clusters, the unit of the buffer package.
// WrapPos and DisplayPos columns are grapheme clusters too, counted from the
// start of the wrapped row; the fold marker counts as one column. Wrap width is
// measured in terminal cells.
//
// A DisplayMap is not safe for concurrent use.
package displaymap
