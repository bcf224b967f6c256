// Package server exposes the resolver and the metadata service as a small JSON HTTP API.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally. Routes use the method-qualified
// patterns of the stdlib mux, so path values like {id} are available through [http.Request.PathValue].
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
//
// # API
//
// [APIHandler] serves:
//   - GET /api/resolve?q=<input>
//   - GET /api/channels/{id}
//   - GET /api/channels/{id}/videos?page=<token>
//   - GET /api/videos?id=<id>,<id>
//
// Errors are written as {"error": "..."} with a status derived from the sentinel errors in shared.
package server
