// Package schema defines the data model shared by the staging
// pipeline: source record descriptions supplied by the front end, and
// the staging type and conversion blueprints produced by the core.
//
// Everything here is plain data. The front end (internal/analyze)
// populates RecordSchema values, the core (internal/stage) derives
// StagingSchema and ConversionSpec values, and the renderer
// (internal/gen) turns those into Go source.
package schema
