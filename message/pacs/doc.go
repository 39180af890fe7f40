// Package pacs implements the payments clearing and settlement family,
// currently the FI-to-FI customer credit transfer (pacs.008).
package pacs
