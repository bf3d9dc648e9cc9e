// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// defines the port, the API key guarding every route and the graceful
// shutdown window.
package server
