// Package joke defines the wire types exchanged with the joke generation
// endpoint and an HTTP client that performs a single generation request per
// call.
//
// The client never retries. Any non-2xx status is reported as a StatusError
// carrying the fixed message "Failed to generate joke"; transport failures are
// returned as-is so their message can be shown to the user unchanged.
package joke
