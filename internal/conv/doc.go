// Package conv collects tiny helper functions that are not part of the public API
// but aid internal conversions.
//
// At the moment it only exposes `AsInt` which coerces JSON-RPC request ids into a plain `int`.
package conv
