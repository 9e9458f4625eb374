// Package server runs the Minecraft handshake/status/login/configuration
// pipeline: a TCP accept loop, one goroutine per connection, and the
// phase-gated packet dispatcher that drives responses.
package server
