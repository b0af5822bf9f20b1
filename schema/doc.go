// Package schema defines the JSON messages exchanged with the tonlib engine.
//
// Requests carry a type tag in "@type" and a correlation id in "@extra". Marshal adds both
// envelope fields to any Request. Responses are decoded once at the boundary by Decode into
// a Message tagged as success, error, or unrecognized; only the first two can be matched to
// a caller.
package schema
