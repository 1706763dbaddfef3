// Package http implements the card service REST API.
//
// Routes are registered on a chi router in [Handler.Init]. Every request
// passes through trace id, access logging, gzip and panic recovery
// middlewares; write requests are additionally checked against the
// HashSHA256 body signature when the server has a hash key.
package http
