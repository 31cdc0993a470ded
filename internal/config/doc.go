// Package config provides configuration loading, merging, and validation
// facilities for the gateway.
//
// Configuration is assembled from multiple sources; for each field the first
// source that sets it wins:
//  1. Command-line flags
//  2. Environment variables (a .env file in the working directory is loaded
//     first and never overrides variables that are already set)
//  3. JSON config file
//  4. Built-in defaults
//
// Secrets (X_API_KEY, ADPOINT_AUTH_HEADER) have no flags so that they never
// show up in process listings.
//
// The main entry point is [GetStructuredConfig].
package config
