// Package graph holds the authored dialogue graph: nodes, their ownership
// tree, and the non-owning link edges that introduce merges and cycles.
//
// Ownership is strictly a tree. A node exclusively owns its children and its
// attached events; Parent is a non-owning back reference used for navigation
// and removal. Cycles exist only through link nodes, which store a target
// guid instead of a pointer and re-resolve it against the live graph at
// traversal time, so a removed target degrades to a dead link rather than a
// dangling reference.
//
// Node kinds are a static registry populated at startup (line, link and
// comment are built in). Each kind carries an authoring-metadata descriptor
// exposed as a JSON schema for external inspector panels; the engine itself
// never reflects over kinds at runtime.
package graph
