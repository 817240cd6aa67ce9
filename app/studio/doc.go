// Package studio is the QR studio HTTP service: it renders styled QR codes as
// inline PNGs, downloads and data URIs, and lists the available styles.
//
// Routes:
//
//	GET /qr.png?text=&style=&size=&margin=   inline PNG, 204 for blank text
//	GET /qr/{style}.png?text=&size=&margin=  same, style taken from the path
//	GET /qr/download?...                     PNG as an attachment
//	GET /qr.json?...                         {"style","size","data_uri"}
//	GET /modes                               style catalog
//	GET /health/live, /health/ready
//
// Render routes are rate limited per client IP (429 with Retry-After).
// Rendered images are memoized in an LRU keyed by every render argument.
// Invalid parameters and unrenderable input answer 400; JSON endpoints reply
// with a JSON error body.
package studio
