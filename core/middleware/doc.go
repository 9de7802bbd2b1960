// Package middleware groups the HTTP middleware used by the server:
//
//   - rayid: assigns a unique request ID (ray ID) for log correlation
//   - auth: protects the API with a static API key
//
// Middleware order matters: rayid must run first so that every log line,
// including auth rejections, carries the request's ray ID.
package middleware
