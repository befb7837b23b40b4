/*
Package config loads textparser settings from files and the environment.

# Overview

config wraps a map[string]any and provides typed accessor methods that handle
missing keys and type mismatches gracefully by returning default values.
Settings is built on top of it and describes the delimiters, strictness
and binding sources for a Parser.

# File Loading

Load configuration from YAML or JSON files:

	cfg, err := config.FromFile("textparse.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	settings := config.SettingsFrom(cfg)

A settings file looks like:

	start: "{{"
	end: "}}"
	strict: true
	bindings:
	  - defaults.yaml
	  - local.env
	vars:
	  product: textparser

# Environment

FromEnv reads TEXTPARSE_START, TEXTPARSE_END, TEXTPARSE_PRESET,
TEXTPARSE_STRICT, TEXTPARSE_CONCURRENCY and TEXTPARSE_BINDINGS
(semicolon-separated paths):

	env, err := config.FromEnv()
	settings := env.Merge(config.SettingsFrom(cfg))

# Building a Parser

	d, err := settings.Delimiters()
	if err != nil {
	    log.Fatal(err)
	}
	p := textparser.NewParser(d, settings.ParserOptions()...)

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation.
*/
package config
