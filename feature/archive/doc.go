// Package archive stores named point-in-time snapshots of the record list in
// the database and replays them through the reconciliation engine on restore.
package archive
