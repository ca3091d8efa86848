// Package http implements the HTTP transport layer of the order gateway.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request correlation,
// per-caller rate limiting, access logging, and request metrics are handled
// in this package before requests are delegated to the service layer. It is
// also the sole place where component-level errors are translated into HTTP
// status codes.
package http
