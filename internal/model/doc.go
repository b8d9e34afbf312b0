// Package model contains the shared interfaces and data structures.
//
// # Criteria for adding a type to this package
//
// This package should contain two kinds of types:
//
// 1. interfaces shared by several packages (the logger and the
// HTTP client) so that unit testing is easier;
//
// 2. small pieces of data shared across the service clients and
// the command line glue (e.g., a [Coordinate]).
//
// # Content of this package
//
// - coordinate.go: a latitude/longitude pair;
//
// - http.go: the HTTP client interface and default headers;
//
// - logger.go: an apex/log compatible logger.
package model
