// Package config provides configuration loading, merging, and validation
// for the flashcard server and client.
//
// Configuration is assembled from multiple sources merged with mergo, where
// the first source that sets a field wins:
//  1. Environment variables (an optional .env file is loaded first)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
