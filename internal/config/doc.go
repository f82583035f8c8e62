// Package config loads the YAML files the CLI works with: the CLI config,
// letterhead definitions and placeholder value sets.
//
// All files are decoded strictly, so a misspelled key is an error rather
// than a silently ignored setting.
package config
