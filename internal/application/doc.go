// Package application provides application initialization and dependency wiring.
// It encapsulates the creation of storage, analyzers, handlers, routers, and
// HTTP server instances for the API service, and the load-analyze-render
// pipeline for the batch analyzer, keeping the main packages focused on CLI
// parsing and orchestration.
package application
