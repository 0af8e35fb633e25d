package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// Source names a layer that contributed to a merged config.
type Source string

const (
	SourceEnv    Source = "env"
	SourceFile   Source = "file"
	SourceLocal  Source = "local"
	SourceGlobal Source = "global"
)

// Builder collects config layers in precedence order (first wins).
type Builder struct {
	layers  []FileConfig
	sources []Source
	err     error
}

func NewBuilder() *Builder {
	return &Builder{layers: make([]FileConfig, 0, 3)}
}

func (b *Builder) add(cfg FileConfig, src Source) {
	b.layers = append(b.layers, cfg)
	b.sources = append(b.sources, src)
}

// WithEnv adds the environment layer.
func (b *Builder) WithEnv() *Builder {
	cfg, err := LoadEnv()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.add(cfg, SourceEnv)
	return b
}

// WithFile adds an explicitly named file. A missing file is an error.
func (b *Builder) WithFile(path string) *Builder {
	cfg, err := LoadFile(path)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("load config %s: %w", path, err))
		return b
	}
	b.add(cfg, SourceFile)
	return b
}

// WithLocal adds the project-local file from dir, if present.
func (b *Builder) WithLocal(dir string) *Builder {
	cfg, err := LoadLocal(dir)
	switch {
	case errors.Is(err, ErrNoConfig):
	case err != nil:
		b.err = errors.Join(b.err, err)
	default:
		b.add(cfg, SourceLocal)
	}
	return b
}

// WithGlobal adds the per-user global file, if present.
func (b *Builder) WithGlobal() *Builder {
	cfg, err := LoadGlobal()
	switch {
	case errors.Is(err, ErrNoConfig):
	case err != nil:
		b.err = errors.Join(b.err, err)
	default:
		b.add(cfg, SourceGlobal)
	}
	return b
}

// Sources lists the layers that were found, highest precedence first.
func (b *Builder) Sources() []Source { return b.sources }

// Build merges the collected layers and validates the result.
func (b *Builder) Build() (FileConfig, error) {
	var out FileConfig
	if b.err != nil {
		return out, fmt.Errorf("error occurred during building config: %w", b.err)
	}
	for _, layer := range b.layers {
		// Without dereferencing, a set pointer in a higher layer is kept even
		// when it points at false or 0.
		if err := mergo.Merge(&out, layer, mergo.WithoutDereference); err != nil {
			return out, fmt.Errorf("error merging configs: %w", err)
		}
	}
	return out, out.Validate()
}
