// Package config loads, merges and validates configuration for both
// mess-manager binaries.
//
// Values are assembled from three sources, later non-zero fields winning:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (when one is pointed at via CONFIG or -config)
//
// [GetStructuredConfig] returns the full merged configuration used by the
// server; [GetClientConfig] narrows it to the view the client needs.
package config
