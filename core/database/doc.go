// Package database provides the relational database connection used by the
// archive feature.
//
// MySQL is the production driver; SQLite (including :memory:) is supported
// for local use and tests. The connection is optional: when it cannot be
// established the server still starts, with the archive feature disabled.
package database
