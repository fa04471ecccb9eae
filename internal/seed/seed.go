// Package seed loads catalog items, class templates and custom item modifiers from a JSON file
package seed

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-armory/internal/entities/hero"
	"github.com/KirkDiggler/rpg-armory/internal/errors"
	"github.com/KirkDiggler/rpg-armory/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-armory/internal/repositories/classdef"
	"github.com/KirkDiggler/rpg-armory/internal/repositories/modifier"
)

// File is the seed file layout
type File struct {
	Items     []*equipment.Item `json:"items" validate:"dive,required"`
	Classes   []*hero.ClassDef  `json:"classes" validate:"dive,required"`
	Modifiers []string          `json:"modifiers" validate:"dive,required,max=64"`
}

// Result reports what a seed run wrote
type Result struct {
	Items     int
	Classes   int
	Modifiers int64
	Revision  int64
}

// Config holds the repositories a seed run writes to
type Config struct {
	CatalogRepo  catalog.Repository
	ClassRepo    classdef.Repository
	ModifierRepo modifier.Repository
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.ClassRepo == nil {
		vb.RequiredField("ClassRepo")
	}
	if c.ModifierRepo == nil {
		vb.RequiredField("ModifierRepo")
	}

	return vb.Build()
}

// Loader writes seed files through the repositories
type Loader struct {
	catalogRepo  catalog.Repository
	classRepo    classdef.Repository
	modifierRepo modifier.Repository
	validate     *validator.Validate
}

// New creates a seed loader
func New(cfg *Config) (*Loader, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Loader{
		catalogRepo:  cfg.CatalogRepo,
		classRepo:    cfg.ClassRepo,
		modifierRepo: cfg.ModifierRepo,
		validate:     newValidator(),
	}, nil
}

// Parse decodes and validates a seed file
func (l *Loader) Parse(r io.Reader) (*File, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, errors.InvalidArgumentf("malformed seed file: %v", err)
	}

	if err := l.validate.Struct(&f); err != nil {
		return nil, validationError(err)
	}

	return &f, nil
}

// LoadFile parses the file at path and applies it
func (l *Loader) LoadFile(ctx context.Context, path string) (*Result, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open seed file %s", path)
	}
	defer func() {
		_ = fh.Close()
	}()

	f, err := l.Parse(fh)
	if err != nil {
		return nil, err
	}

	return l.Apply(ctx, f)
}

// Apply writes a parsed seed file. Items go in one catalog write so the revision moves once.
func (l *Loader) Apply(ctx context.Context, f *File) (*Result, error) {
	if f == nil {
		return nil, errors.InvalidArgument("seed file is required")
	}

	result := &Result{}

	if len(f.Items) > 0 {
		out, err := l.catalogRepo.Put(ctx, catalog.PutInput{Items: f.Items})
		if err != nil {
			return nil, errors.Wrap(err, "failed to seed catalog")
		}
		result.Items = len(f.Items)
		result.Revision = out.Revision
	}

	for _, class := range f.Classes {
		if _, err := l.classRepo.Put(ctx, classdef.PutInput{Class: class}); err != nil {
			return nil, errors.Wrapf(err, "failed to seed class %s", class.ID)
		}
		result.Classes++
	}

	if len(f.Modifiers) > 0 {
		out, err := l.modifierRepo.Register(ctx, modifier.RegisterInput{Names: f.Modifiers})
		if err != nil {
			return nil, errors.Wrap(err, "failed to seed modifiers")
		}
		result.Modifiers = out.Added
	}

	slog.InfoContext(ctx, "seed applied",
		"items", result.Items,
		"classes", result.Classes,
		"modifiers_added", result.Modifiers,
		"catalog_revision", result.Revision)

	return result, nil
}
