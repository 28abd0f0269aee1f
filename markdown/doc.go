// Package markdown toggles Markdown constructs in a Document.
//
// The Engine reads the style classification at the selection start to decide
// whether a construct is already active (Inspect), then either strips its
// markup or inserts it and moves the selection so the originally selected
// text stays selected.
//
// Constructs come in three kinds:
//
//   - inline (bold, italic): wrapped around the selection, removed from the
//     start line around the caret.
//   - block (quote, lists): a marker at the head of every selected line.
//   - draw (link, image): placeholder markup wrapped around the selection.
package markdown
