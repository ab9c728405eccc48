// Package model defines the field descriptor and ordered field set shared by
// the dialog component, the renderers, and the submission builder.
package model
