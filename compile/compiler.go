// Package compile implements the stylec commands: it finds stylesheets,
// compiles and merges them into containers, checks them and dumps compiled
// containers for inspection.
package compile

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"stylec/cache"
	"stylec/config"
	"stylec/container"
	"stylec/css"
	"stylec/misc"
)

// Compiler turns inputs into a single container. Inputs are merged in the
// order given, so later sources patch classes and animations of earlier ones.
type Compiler struct {
	cfg     *config.CompilerConfig
	log     *zap.Logger
	parser  *css.Parser
	cache   *cache.Cache
	rpt     *config.Report
	charset encoding.Encoding
}

// Option adjusts a Compiler.
type Option func(*Compiler)

// WithCache serves unchanged sources from c and stores new results there.
func WithCache(c *cache.Cache) Option {
	return func(cm *Compiler) { cm.cache = c }
}

// WithReport stores diagnostics into the debug report.
func WithReport(rpt *config.Report) Option {
	return func(cm *Compiler) { cm.rpt = rpt }
}

// WithCharset sets the encoding of stylesheets which are not UTF-8.
func WithCharset(enc encoding.Encoding) Option {
	return func(cm *Compiler) { cm.charset = enc }
}

func NewCompiler(cfg *config.CompilerConfig, log *zap.Logger, opts ...Option) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Compiler{cfg: cfg, log: log.Named("compile"), parser: css.NewParser(log)}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Summary describes a finished compilation.
type Summary struct {
	Sources     int
	Cached      int
	Diagnostics int
	// Rejected lists sources with diagnostics.
	Rejected []string
}

func cacheVersion() string {
	return misc.GetVersion() + "-" + misc.GetGitHash()
}

// Compile processes inputs one at a time. Sources with diagnostics are still
// merged (minus what was skipped) unless the configuration is strict, in
// which case an error is returned after all inputs have been looked at.
func (c *Compiler) Compile(ctx context.Context, inputs []Input) (*container.Container, Summary, error) {
	var sum Summary

	out, err := container.New()
	if err != nil {
		return nil, sum, err
	}

	var errs error
	for i := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, sum, err
		}
		in := &inputs[i]

		part, diags, cached, err := c.compileOne(in)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", in.Origin, err))
			continue
		}
		sum.Sources++
		if cached {
			sum.Cached++
		}
		if len(diags) > 0 {
			sum.Diagnostics += len(diags)
			sum.Rejected = append(sum.Rejected, in.Origin)
			c.report(in, diags)
		}
		out.Merge(part)
	}

	if c.cfg.Strict && sum.Diagnostics > 0 {
		errs = multierr.Append(errs, fmt.Errorf("%d invalid declarations in %s", sum.Diagnostics, strings.Join(sum.Rejected, ", ")))
	}
	if errs != nil {
		return nil, sum, errs
	}
	return out, sum, nil
}

// compileOne returns a single source container for in.
func (c *Compiler) compileOne(in *Input) (part *container.Container, diags css.Diagnostics, cached bool, err error) {
	data, err := in.Read(c.charset)
	if err != nil {
		return nil, nil, false, err
	}

	if in.Container {
		part, err = container.Load(bytes.NewReader(data))
		if err != nil {
			return nil, nil, false, err
		}
		c.log.Debug("Merging compiled container", zap.String("source", in.Origin), zap.Stringer("id", part.ID))
		return part, nil, false, nil
	}

	src := container.Source{
		Name:  in.Name,
		Scope: ScopeFor(c.cfg.Scope, in.Name, data, c.cfg.FixedScope),
		Hash:  xxhash.Sum64(data),
	}

	var key uint64
	if c.cache != nil {
		key = cache.Key(data, src.Scope, cacheVersion())
		payload, ok, err := c.cache.Get(key)
		if err != nil {
			c.log.Warn("Unable to use compile cache", zap.String("source", in.Origin), zap.Error(err))
		} else if ok {
			if part, err = container.Load(bytes.NewReader(payload)); err == nil {
				part.Sources = []container.Source{src}
				return part, nil, true, nil
			}
			c.log.Warn("Ignoring broken cache entry", zap.String("source", in.Origin), zap.Error(err))
		}
	}

	start := time.Now()
	classes, diags := c.parser.ParseClassMap(data, src.Scope, in.Origin)

	if part, err = container.New(); err != nil {
		return nil, nil, false, err
	}
	if err = part.Add(src, classes); err != nil {
		return nil, nil, false, err
	}
	c.log.Debug("Compiled",
		zap.String("source", in.Origin),
		zap.Uint64("scope", src.Scope),
		zap.Int("classes", len(part.Sheet.Classes)),
		zap.Int("diagnostics", len(diags)),
		zap.Duration("elapsed", time.Since(start)))

	// only clean results are cached, diagnostics must show up every run
	if c.cache != nil && len(diags) == 0 {
		var buf bytes.Buffer
		if err := container.Save(&buf, part, container.FormatBinary); err != nil {
			c.log.Warn("Unable to prepare cache entry", zap.String("source", in.Origin), zap.Error(err))
		} else if err := c.cache.Put(key, in.Origin, buf.Bytes()); err != nil {
			c.log.Warn("Unable to update compile cache", zap.String("source", in.Origin), zap.Error(err))
		}
	}
	return part, diags, false, nil
}

func (c *Compiler) report(in *Input, diags css.Diagnostics) {
	if c.rpt == nil {
		return
	}
	var buf bytes.Buffer
	for _, d := range diags {
		fmt.Fprintf(&buf, "%s:%v\n", in.Origin, d)
	}
	c.rpt.StoreData(path.Join("diagnostics", in.Name+".txt"), buf.Bytes())
}

// Check parses inputs and returns all diagnostics found, keyed by input
// origin. Containers are only loaded.
func (c *Compiler) Check(ctx context.Context, inputs []Input) (map[string]css.Diagnostics, error) {
	found := make(map[string]css.Diagnostics)
	var errs error
	for i := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		in := &inputs[i]

		data, err := in.Read(c.charset)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", in.Origin, err))
			continue
		}
		if in.Container {
			if _, err := container.Load(bytes.NewReader(data)); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", in.Origin, err))
			}
			continue
		}
		scope := ScopeFor(c.cfg.Scope, in.Name, data, c.cfg.FixedScope)
		if _, diags := c.parser.ParseClassMap(data, scope, in.Origin); len(diags) > 0 {
			found[in.Origin] = diags
			c.report(in, diags)
		}
	}
	return found, errs
}
