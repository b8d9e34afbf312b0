// Package version contains the apitour version.
package version

// Version is the software version.
const Version = "0.1.0"
