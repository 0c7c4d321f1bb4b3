// Package http implements the REST API of the legal workflow server.
//
// Routes are wired in [Handler.Init]. Every route under /api except health
// and version requires a bearer token whose claims become the
// [models.Principal] passed to the services. Service error categories are
// mapped onto HTTP statuses in errors_mapper.go.
package http
