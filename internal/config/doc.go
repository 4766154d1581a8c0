// Package config provides configuration loading, merging, and validation
// facilities for the courses API server.
//
// Configuration is assembled from multiple sources in the following priority
// order (for every field the first source that sets it wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
