// Package mdstyle classifies Markdown source into style tags.
//
// A Classifier parses the document with goldmark and answers, for a position,
// the space-separated tags in effect there. Inline tags (strong, em, link,
// image, comment) cover byte spans that include their delimiters; line tags
// (header, quote, variable-2 for list items, comment for code blocks) cover
// whole rows.
//
// Results are cached per text version of the source.
package mdstyle
