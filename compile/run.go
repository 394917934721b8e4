package compile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"stylec/config"
	"stylec/container"
	"stylec/state"
)

func sources(cmd *cli.Command) ([]string, error) {
	if cmd.NArg() == 0 {
		return nil, errors.New("no input source has been specified")
	}
	srcs := cmd.Args().Slice()
	for i, s := range srcs {
		abs, err := filepath.Abs(s)
		if err != nil {
			return nil, err
		}
		srcs[i] = abs
	}
	return srcs, nil
}

func collect(ctx context.Context, env *state.LocalEnv, cmd *cli.Command, log *zap.Logger) ([]Input, error) {
	srcs, err := sources(cmd)
	if err != nil {
		return nil, err
	}
	pattern, err := IncludePattern(env.Cfg.Compiler.Include)
	if err != nil {
		return nil, err
	}
	return Collect(ctx, srcs, pattern, log)
}

// Run is the compile command: all sources are merged into one container.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("compile")

	env.Overwrite = cmd.Bool("overwrite")

	cfg := env.Cfg.Compiler
	if cmd.Bool("strict") {
		cfg.Strict = true
	}
	if f := cmd.String("format"); len(f) > 0 {
		format, err := config.ParseContainerFormat(f)
		if err != nil {
			log.Warn("Unknown container format requested, using configured one", zap.String("format", f), zap.Error(err))
		} else {
			cfg.ContainerFormat = format
		}
	}

	inputs, err := collect(ctx, env, cmd, log)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return errors.New("no stylesheets found")
	}

	output := cmd.String("output")
	if len(output) == 0 {
		name, err := OutputName(cfg.OutputTemplate, filepath.ToSlash(cmd.Args().First()), cfg.Transliterate)
		if err != nil {
			return err
		}
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
		output = filepath.Join(wd, filepath.FromSlash(name)+cfg.ContainerFormat.Ext())
	}
	if output, err = filepath.Abs(output); err != nil {
		return err
	}

	if err := prepareOutput(output, env.Overwrite, log); err != nil {
		return err
	}

	log.Info("Compilation starting", zap.Int("sources", len(inputs)), zap.String("destination", output), zap.Stringer("format", cfg.ContainerFormat))
	defer func(start time.Time) {
		log.Info("Compilation completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	compiler := NewCompiler(&cfg, env.Log, WithCache(env.Cache), WithReport(env.Rpt), WithCharset(env.Charset))
	c, sum, err := compiler.Compile(ctx, inputs)
	if err != nil {
		return err
	}
	if sum.Diagnostics > 0 {
		log.Warn("Some declarations were skipped", zap.Int("count", sum.Diagnostics), zap.Strings("sources", sum.Rejected))
	}

	format := container.FormatBinary
	if cfg.ContainerFormat == config.ContainerFormatText {
		format = container.FormatText
	}
	var buf bytes.Buffer
	if err := container.Save(&buf, c, format); err != nil {
		return err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("unable to write container: %w", err)
	}
	env.Rpt.Store("result"+cfg.ContainerFormat.Ext(), output)

	log.Info("Container written",
		zap.String("file", output),
		zap.Stringer("id", c.ID),
		zap.Int("classes", len(c.Sheet.Classes)),
		zap.Int("sources", sum.Sources),
		zap.Int("cached", sum.Cached))
	return nil
}

func prepareOutput(output string, overwrite bool, log *zap.Logger) error {
	if _, err := os.Stat(output); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", output)
		}
		log.Warn("Overwriting existing file", zap.String("file", output))
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}

// Check is the check command: sources are parsed and every diagnostic is
// logged. Any diagnostic fails the command.
func Check(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("check")

	inputs, err := collect(ctx, env, cmd, log)
	if err != nil {
		return err
	}

	compiler := NewCompiler(&env.Cfg.Compiler, env.Log, WithReport(env.Rpt), WithCharset(env.Charset))
	found, err := compiler.Check(ctx, inputs)
	if err != nil {
		return err
	}

	origins := make([]string, 0, len(found))
	total := 0
	for o, diags := range found {
		origins = append(origins, o)
		total += len(diags)
	}
	sort.Strings(origins)
	for _, o := range origins {
		for _, d := range found[o] {
			log.Error("Invalid declaration", zap.String("source", o), zap.Int("line", d.Line), zap.Int("column", d.Column), zap.Error(d.Err))
		}
	}
	if total > 0 {
		return fmt.Errorf("%d problems in %d of %d sources", total, len(found), len(inputs))
	}
	log.Info("All sources are valid", zap.Int("sources", len(inputs)))
	return nil
}

// Dump is the dump command: a compiled container is written in a readable
// form to a file or STDOUT.
func Dump(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("dump")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no container has been specified")
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	format, err := config.ParseDumpFormat(cmd.String("format"))
	if err != nil {
		return fmt.Errorf("unknown dump format: %w", err)
	}

	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open container: %w", err)
	}
	defer f.Close()
	c, err := container.Load(f)
	if err != nil {
		return fmt.Errorf("unable to load %s: %w", src, err)
	}

	out, dst := os.Stdout, cmd.Args().Get(1)
	if len(dst) > 0 {
		if out, err = os.Create(dst); err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", dst, err)
		}
		defer out.Close()
	} else {
		dst = "STDOUT"
	}

	log.Debug("Dumping container", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", format))
	return WriteDump(out, c, format)
}
