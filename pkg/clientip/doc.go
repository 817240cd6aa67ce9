// Package clientip extracts the client IP address from an HTTP request.
//
// Headers are checked in order: CF-Connecting-IP, DO-Connecting-IP,
// X-Forwarded-For (leftmost entry), X-Real-IP, then RemoteAddr. Invalid and
// unspecified addresses are skipped. If nothing parses, the raw RemoteAddr
// is returned.
//
// The headers are client controlled unless a trusted proxy overwrites them.
package clientip
