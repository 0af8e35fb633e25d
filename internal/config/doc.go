// Package config loads seclab defaults from environment variables and from
// local and global YAML files, merged with precedence env > local > global.
// It is internal; CLI code maps flags on top of the merged result.
package config
