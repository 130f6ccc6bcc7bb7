// Package config loads todohawk configuration from local and global YAML
// files with precedence rules. It is internal; CLI code maps flags, action
// inputs, and files into engine configuration.
package config
