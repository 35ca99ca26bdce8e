// Package config provides configuration loading, merging, and validation
// facilities for the API server and the command-line client.
//
// Configuration is assembled from multiple sources. For every field the first
// source holding a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Remaining zero fields receive defaults, after which the result is validated.
// Outside production a missing token sign key falls back to
// [DevelopmentTokenSignKey]; see [StructuredConfig.UsesDevelopmentSignKey].
//
// The main entry point is [GetStructuredConfig].
package config
