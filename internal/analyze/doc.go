// Package analyze is the front end of the staging pipeline: it loads
// Go packages (go/types via go/packages) and flattens exported struct
// declarations into schema.RecordSchema values.
//
// The core never sees syntax. Field-name uniqueness and type
// resolvability are go/types' job; analyze only extracts the ordered
// field list and qualified type renderings the later stages need.
package analyze
