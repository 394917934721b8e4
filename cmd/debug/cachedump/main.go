// cachedump inspects the stylec compile cache. It lists stored entries and,
// when asked, decodes every cached container and prints its classes and
// keyframes. Old entries may be pruned.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"stylec/cache"
	"stylec/container"
	"stylec/utils/debug"
)

func main() {
	classes := flag.Bool("classes", false, "decode cached containers and print their classes and keyframes")
	prune := flag.Duration("prune", 0, "remove entries older than `AGE` (for example 720h) before dumping")
	overwrite := flag.Bool("overwrite", false, "overwrite existing output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: cachedump [-classes] [-prune AGE] [-overwrite] <cache.db> [outdir]\n\n")
		fmt.Fprintf(os.Stderr, "Lists compile cache entries into <cache>-dump.txt, or STDOUT when outdir is \"-\".\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}

	defer func(startedAt time.Time) {
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", time.Since(startedAt))
	}(time.Now())

	inPath := flag.Arg(0)
	if _, err := os.Stat(inPath); err != nil {
		fmt.Fprintf(os.Stderr, "open %s: %v\n", inPath, err)
		os.Exit(1)
	}

	c, err := cache.Open(inPath, 1, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	if *prune > 0 {
		n, err := c.Prune(time.Now().Add(-*prune))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "pruned %d entries\n", n)
	}

	dump, err := dumpEntries(c, *classes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dump %s: %v\n", inPath, err)
		os.Exit(1)
	}

	if flag.Arg(1) == "-" {
		fmt.Print(dump)
		return
	}
	if err := writeOutput(inPath, flag.Arg(1), "-dump.txt", []byte(dump), *overwrite); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func dumpEntries(c *cache.Cache, classes bool) (string, error) {
	entries, err := c.List()
	if err != nil {
		return "", err
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "entries: %d", len(entries))
	for _, e := range entries {
		tw.Line(0, "entry")
		tw.Hex(1, "key", e.Key)
		tw.Field(1, "source", e.Source)
		tw.Line(1, "created: %s", e.Created.UTC().Format(time.RFC3339))
		tw.Line(1, "size: %d (%d compressed)", e.Size, e.Compressed)
		if !classes {
			continue
		}

		payload, ok, err := c.Get(e.Key)
		if err != nil || !ok {
			tw.Line(1, "payload: unavailable (%v)", err)
			continue
		}
		part, err := container.Load(bytes.NewReader(payload))
		if err != nil {
			tw.Line(1, "payload: broken (%v)", err)
			continue
		}
		dumpContainer(tw, part)
	}
	return tw.String(), nil
}

func dumpContainer(tw *debug.TreeWriter, c *container.Container) {
	tw.Field(1, "generator", c.Generator)
	for _, id := range c.Sheet.IDs() {
		meta := c.Sheet.Classes[id]
		attrs, err := c.Sheet.Decode(meta)
		if err != nil {
			tw.Line(1, "class %d: %v", id, err)
			continue
		}
		tw.Line(1, "class %d (%d kinds)", id, meta.Mark.Count())
		for _, a := range attrs {
			tw.Line(2, "%s", a)
		}
	}
	for _, t := range c.Keyframes {
		for _, name := range t.Names() {
			frames, _ := t.Frames(name)
			tw.Line(1, "keyframes %s", name)
			for _, p := range frames.Progress() {
				tw.Line(2, "%g%%", p.Value()*100)
				for _, a := range frames[p] {
					tw.Line(3, "%s", a)
				}
			}
		}
	}
}

func writeOutput(inPath, outDir, suffix string, data []byte, overwrite bool) error {
	base := filepath.Base(inPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	dir := filepath.Dir(inPath)
	if outDir != "" {
		dir = outDir
	}
	outPath := filepath.Join(dir, stem+suffix)

	if _, err := os.Stat(outPath); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s (use -overwrite)", outPath)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", outPath)
	return nil
}
