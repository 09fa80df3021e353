// Package http implements the HTTP transport layer of the shop.
//
// It wires the request pipeline: trace ids, security headers, metrics,
// compression and access logging first, then static files, then body and
// upload parsing, the session and CSRF gate, template locals and identity
// resolution, and finally the admin, shop and auth route groups. Every
// error raised by a pipeline stage or a route handler ends in the error
// boundary, which logs it and renders an error page.
package http
