// Package config provides configuration loading, merging, and validation
// facilities for the gateway.
//
// Configuration is assembled from multiple sources in the following priority
// order (higher sources override lower non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//
// Fields left empty by every source receive the defaults declared in
// config_defaults.go. The entry point is [GetStructuredConfig].
package config
