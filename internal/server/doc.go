// Package server runs the card service HTTP server and shuts it down
// gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
