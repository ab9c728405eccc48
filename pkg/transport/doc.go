// Package transport performs the network side of a submission: JSON POSTs to
// the resolved endpoint and access-token retrieval for install requests.
package transport
