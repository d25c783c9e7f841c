// Package nodeid manages the persistent identifier of a logmesh node.
//
// The identifier is stored as a single line in the node ID file. Stored
// content is used as is; new identifiers are ULIDs. An id is generated only
// when the file is missing or blank, so a node keeps its identity across
// restarts.
package nodeid
