// Package spatialindex is a thin, independently-testable consumer of
// meshdag's output: an R-tree over a finished DAG's cluster bounding
// boxes, for callers that want to ask "which clusters overlap this
// region" without walking the DAG's level/group structure. It never
// mutates a DAG and never participates in Build itself.
package spatialindex
