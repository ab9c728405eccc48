// Package schema turns caller-supplied dialog descriptions (YAML documents
// or OpenAPI request bodies) into ordered field descriptor sets.
package schema
