package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Version identifies the solver family a model targets.
type Version string

const (
	MF2005 Version = "mf2005"
	MFUSG  Version = "mfusg"
	MFLGR  Version = "mflgr"
	MF2K   Version = "mf2k"
	MFNWT  Version = "mfnwt"
)

// Package is a control-file unit registered with a model. The model
// enumerates packages in registration order when writing input files.
type Package interface {
	Name() string
	FileType() string
	UnitNumber() int
	FileName() string
	WriteFile() error
}

type Model struct {
	name      string
	version   Version
	workspace string
	packages  []Package
}

type Option func(*Model)

func WithVersion(v Version) Option {
	return func(m *Model) { m.version = v }
}

func WithWorkspace(dir string) Option {
	return func(m *Model) { m.workspace = dir }
}

func New(name string, opts ...Option) *Model {
	m := &Model{
		name:      name,
		version:   MFUSG,
		workspace: ".",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) Name() string      { return m.name }
func (m *Model) Version() Version  { return m.version }
func (m *Model) Workspace() string { return m.workspace }

// Add registers a package with the model. The model owns the package
// afterwards; each file type may be registered once.
func (m *Model) Add(p Package) error {
	for _, existing := range m.packages {
		if existing.FileType() == p.FileType() {
			return fmt.Errorf("package %s already registered", p.FileType())
		}
	}
	m.packages = append(m.packages, p)
	return nil
}

func (m *Model) Package(ftype string) (Package, bool) {
	for _, p := range m.packages {
		if strings.EqualFold(p.FileType(), ftype) {
			return p, true
		}
	}
	return nil, false
}

func (m *Model) Packages() []Package {
	return m.packages
}

// Heading builds the comment line written at the top of a package file.
func (m *Model) Heading(p Package) string {
	return fmt.Sprintf("# %s package for %s generated by gwsim", p.FileType(), m.version)
}

// DefaultFileName applies the model naming convention for a package file
// with the given extension.
func (m *Model) DefaultFileName(ext string) string {
	return m.name + "." + ext
}

// Path resolves a package file name against the model workspace.
func (m *Model) Path(fname string) string {
	return filepath.Join(m.workspace, fname)
}

// WriteInput writes every registered package file in registration order.
func (m *Model) WriteInput() error {
	for _, p := range m.packages {
		if err := p.WriteFile(); err != nil {
			return fmt.Errorf("write %s: %w", p.FileType(), err)
		}
	}
	return nil
}
