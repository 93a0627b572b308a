package fama

import (
	"context"
	"log/slog"

	"github.com/Roldans/FaMA/pkg/generator"
	"github.com/Roldans/FaMA/pkg/namegen"
)

// Option configures the assembly performed by Generate.
type Option func(*options)

type options struct {
	names   namegen.Scheme
	logger  *slog.Logger
	builder generator.ModelBuilder
}

// WithNameScheme sets the feature naming scheme for the default random
// builder. It is ignored when a custom builder is supplied via WithBuilder.
func WithNameScheme(s namegen.Scheme) Option {
	return func(o *options) {
		if s != nil {
			o.names = s
		}
	}
}

// WithLogger sets the logger used by the generation driver.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBuilder replaces the default random builder with a custom one.
func WithBuilder(b generator.ModelBuilder) Option {
	return func(o *options) {
		if b != nil {
			o.builder = b
		}
	}
}

// Generate builds a random feature model matching ch together with its
// complete product set, retrying infeasible draws up to ch.MaxAttempts
// times. It is the package's one-call surface over pkg/generator; use the
// subpackages directly when you need finer control.
func Generate(ctx context.Context, ch generator.Characteristics, opts ...Option) (*generator.Result, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	builder := o.builder
	if builder == nil {
		var bopts []generator.BuilderOption
		if o.names != nil {
			bopts = append(bopts, generator.WithNameScheme(o.names))
		}
		builder = generator.NewRandomBuilder(bopts...)
	}

	var dopts []generator.DriverOption
	if o.logger != nil {
		dopts = append(dopts, generator.WithLogger(o.logger))
	}
	return generator.NewDriver(builder, dopts...).Generate(ctx, ch)
}
