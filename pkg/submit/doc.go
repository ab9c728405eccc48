// Package submit validates a dialog's field set and builds the mode-specific
// request body plus the endpoint it must be posted to.
package submit
