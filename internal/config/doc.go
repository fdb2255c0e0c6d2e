// Package config loads, normalizes, and validates docshelf configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the DOCSHELF_DATA_ROOT
// environment override. The data root is resolved exactly once at load
// time; every component receives the resulting Config by injection
// instead of consulting the environment itself.
//
// Always obtain settings through this package so downstream code
// receives sanitized paths, a similarity threshold inside its documented
// range, and clear validation errors.
package config
