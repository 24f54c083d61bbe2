package main

import (
	"errors"
	"fmt"

	"extension-binder/binding"
	"extension-binder/internal/analyze"
	"extension-binder/internal/diagnostic"
	"extension-binder/internal/mapping"
	"extension-binder/xmlbind"
)

var errNoTypes = errors.New("no types requested, use --type")

// typeOptions select the Go types a command works on.
type typeOptions struct {
	packages []string
	types    []string
}

// project is an extension file with the statically loaded types it configures.
type project struct {
	file    *mapping.File
	graph   *analyze.TypeGraph
	classes []*binding.Class
}

func loadConfig(root *rootOptions) (*mapping.File, error) {
	f, err := mapping.LoadFile(root.configPath)
	if err != nil {
		return nil, err
	}

	root.log.Debug().Str("path", root.configPath).Int("types", len(f.Types)).Msg("extension file loaded")

	return f, nil
}

func loadProject(root *rootOptions, opts *typeOptions) (*project, error) {
	if len(opts.types) == 0 {
		return nil, errNoTypes
	}

	f, err := loadConfig(root)
	if err != nil {
		return nil, err
	}

	graph, err := analyze.NewAnalyzer().LoadPackages(opts.packages...)
	if err != nil {
		return nil, err
	}

	diags := mapping.ValidateAgainst(f, graph)
	logDiagnostics(root, diags)

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid extension file %s: %w", root.configPath, err)
	}

	p := &project{file: f, graph: graph}
	cfg := f.Config()

	for _, name := range opts.types {
		info := mapping.ResolveTypeID(name, graph)
		if info == nil || graph.Packages[info.ID.PkgPath] == nil {
			return nil, fmt.Errorf("type %s not found in %v", name, opts.packages)
		}

		c, err := analyze.StaticClass(graph, info.ID, cfg)
		if err != nil {
			return nil, err
		}

		p.classes = append(p.classes, c)
	}

	return p, nil
}

// resolve builds the mapping of every loaded class.
func (p *project) resolve(root *rootOptions) ([]*xmlbind.ClassMapping, error) {
	reg := xmlbind.NewRegistry(xmlbind.WithLogger(root.log), xmlbind.WithConfig(p.file.Config()))

	out := make([]*xmlbind.ClassMapping, 0, len(p.classes))

	for _, c := range p.classes {
		if err := reg.Register(c); err != nil {
			return nil, err
		}

		m, err := reg.Mapping(c.ID)
		if err != nil {
			return nil, err
		}

		out = append(out, m)
	}

	return out, nil
}

func logDiagnostics(root *rootOptions, diags *diagnostic.Diagnostics) {
	for _, d := range diags.Errors {
		root.log.Error().Str("code", d.Code).Msg(d.String())
	}

	for _, d := range diags.Warnings {
		root.log.Warn().Str("code", d.Code).Msg(d.String())
	}

	for _, d := range diags.Infos {
		root.log.Debug().Str("code", d.Code).Msg(d.String())
	}
}
