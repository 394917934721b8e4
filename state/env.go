// Package state defines shared program state.
package state

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"stylec/cache"
	"stylec/config"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// resolved from configuration by Prepare
	Charset encoding.Encoding
	Cache   *cache.Cache

	// used by compile subcommand
	Overwrite bool

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &LocalEnv{start: time.Now()})
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// Prepare resolves the parts of environment which depend on configuration.
// Cfg and Log must be set.
func (e *LocalEnv) Prepare() error {
	if cs := e.Cfg.Compiler.InputCharset; len(cs) > 0 {
		enc, err := ianaindex.IANA.Encoding(cs)
		switch {
		case err != nil:
			e.Log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cs), zap.Error(err))
		case enc == nil:
			e.Log.Warn("Character set is not supported. Ignoring...", zap.String("charset", cs))
		default:
			n, _ := ianaindex.IANA.Name(enc)
			e.Log.Debug("Decoding stylesheets", zap.String("charset", n))
			e.Charset = enc
		}
	}

	if e.Cfg.Cache.Enable {
		c, err := cache.Open(e.Cfg.Cache.Path, e.Cfg.Cache.CompressionLevel, e.Log)
		if err != nil {
			return fmt.Errorf("unable to open compile cache: %w", err)
		}
		e.Cache = c
	}
	return nil
}

// Close releases resources acquired by Prepare.
func (e *LocalEnv) Close() (err error) {
	if e.Cache != nil {
		err = multierr.Append(err, e.Cache.Close())
		e.Cache = nil
	}
	return err
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
