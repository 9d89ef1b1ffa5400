// Package storage provides the object storage client used for remote contest
// log files.
//
// The Client interface abstracts the subset of Minio/S3 operations the
// application needs (bucket check, get, put, list, remove) so that features
// can be tested against the mock in storage/mocks without a live endpoint.
//
// Contest log files (.csl, .edi, .adi, .adif, .minos) live in a single bucket
// under a configurable prefix; saved CSL exports can be published back to the
// same bucket.
package storage
