// Package storage provides the object storage client used for item image payloads.
//
// Image rows in the database carry metadata only; the actual bytes live as objects
// under the "images/" prefix, keyed by image ID. The Client interface wraps the
// Minio SDK so services and the importer can be tested against the mock in
// core/storage/mocks without a live endpoint.
package storage
