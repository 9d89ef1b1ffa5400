// Package middleware groups the HTTP middleware used by the server.
//
// Subpackages:
//   - rayid: assigns a unique ray ID to every request for log correlation.
//   - auth: optional API-key protection for all API routes.
package middleware
