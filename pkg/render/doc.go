// Package render defines the renderer contract shared by the HTML and
// terminal front-ends, plus helpers for mapping submission errors into
// renderable feedback.
package render
