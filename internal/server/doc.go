// Package server implements the dataset API served over HTTP:
//
//	GET /list           → names of the zip archives in the dataset directory
//	GET /download/{id}  → the archive as an attachment stream
//
// This is the serving side of the contract the client package consumes. The
// router is plain chi with request-id, logging and recovery middleware;
// errors render as structured JSON.
package server
