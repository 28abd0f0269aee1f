// Package upload sends an image to object storage and reports its URL back
// to the editor event loop.
//
// An Uploader permits a single upload in flight. Trigger returns a Bubble
// Tea command that runs the Client and yields a DoneMsg; Complete releases
// the lock and turns the message into a URL or an error. Triggers received
// while an upload is outstanding are dropped.
package upload
