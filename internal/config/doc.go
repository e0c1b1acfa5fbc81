// Package config provides configuration loading, merging, and validation
// facilities for the traduzo client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win over later ones):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which merges all sources into a
// [StructuredConfig], applies defaults, and returns the validated client view.
package config
