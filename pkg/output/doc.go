// Package output renders discovery results.
//
// JSON is the default and the only format meant for machines: a single array
// of device objects, fields omitted when unknown, [] when nothing is up. The
// table format is for terminals and is colored unless disabled.
package output
