// Package config loads the lite-server network config passed to the engine at init.
//
// Local paths and afs URLs are read as is. http(s) locations are downloaded once and
// cached under a directory named after the base64url encoded location.
package config
