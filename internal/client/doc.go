// Package client implements the RISE dataset API client.
//
// The API exposes two endpoints:
//
//	GET /list           → {"files": ["dataset-a.zip", ...]}
//	GET /download/{id}  → zip stream, filename in Content-Disposition
//
// ListDatasets fetches the catalogue; DownloadDataset streams a dataset zip
// to disk in fixed-size chunks with optional progress reporting, then
// extracts it into the destination directory and removes the zip. Requests
// are sequential and carry the caller's context; a non-200 response aborts
// with an error, there are no retries.
package client
