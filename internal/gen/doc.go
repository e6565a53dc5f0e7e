// Package gen renders staged generation units into Go source files.
//
// Generation approach uses text/template + go/format for readable
// output. One file is emitted per staged record: the staging struct
// definition followed by the aggregating conversion function. The core
// stages hand structured blueprints to this package; no other part of
// the pipeline produces text.
package gen
