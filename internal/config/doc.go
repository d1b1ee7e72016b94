// Package config loads the viewgen.yaml project configuration: which
// model packages to analyze, which declaration files to read, and where
// generated code goes.
package config
