// Package buffer implements the document model edited by the ninja toolbar.
//
// Lines are stored as grapheme clusters. Coordinates are 0-based
// (Row, GraphemeCol). Ranges are half-open: [Start, End).
//
// Besides cursor and selection handling the buffer exposes whole-line access
// (Line, SetLine, EachLine) and range replacement, which is the surface the
// markdown engine rewrites markup through.
package buffer
