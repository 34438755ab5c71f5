// Package http implements the HTTP transport layer of the blog API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Bearer authentication, request tracing, access logging, CORS and
// response compression are handled in this package before requests are
// delegated to the service layer.
package http
