// Package record maps trees onto plain records with configurable field
// names and reads and writes those records as JSON or YAML.
//
// Field names and output options come from a YAML config:
//
//	fields:
//	  id-field: key
//	  content-field: value
//	  children-field: kids
//	option-format: YAML
//	option-indent: 2
package record
