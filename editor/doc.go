// Package editor provides the Bubble Tea Markdown editor component backed by
// the buffer package.
//
// The package is responsible for input handling, viewport behavior,
// grapheme-aware rendering, the formatting toolbar and status bar, image
// uploads, and host integration hooks (highlighting, clipboard, custom
// actions, and change events).
package editor
