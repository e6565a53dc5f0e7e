// Package config loads the YAML description of one generation unit:
// which packages to analyze, which records to stage, the unit's error
// type, and where the rendered output goes.
package config
