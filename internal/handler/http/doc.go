// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request correlation, access
// logging, response timing, and uniform error rendering are handled in this
// package before requests are delegated to the service layer.
package http
