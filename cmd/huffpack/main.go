package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	huffman "github.com/chronos-tachyon/bytehuff"
	"github.com/chronos-tachyon/bytehuff/container"
	"github.com/chronos-tachyon/bytehuff/internal/config"
	"github.com/chronos-tachyon/bytehuff/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Getenv, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, getenv func(string) string, stderr io.Writer) int {
	cfg, err := config.Load(args, getenv, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "huffpack: %v\n", err)
		return 2
	}
	logg := logger.New(stderr, cfg.Verbose)

	switch cfg.Command {
	case "compress":
		err = compressFile(cfg, logg, cfg.Args[0], cfg.Args[1])
	case "decompress":
		err = decompressFile(cfg, logg, cfg.Args[0], cfg.Args[1])
	case "roundtrip":
		err = roundTrip(ctx, cfg, logg, cfg.Args)
	}
	if err != nil {
		logg.Errorf("%s: %v", cfg.Command, err)
		return 1
	}
	return 0
}

func compressFile(cfg *config.Config, logg logger.Logger, inPath string, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}

	n, err := container.CompressFrom(out, bufio.NewReader(in), cfg.Format)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	if info, err := in.Stat(); err == nil {
		logg.Infof("%s: %d bytes -> %s: %d bytes (%s table, %s)", inPath, info.Size(), outPath, n, cfg.Format.Name(), ratio(n, info.Size()))
	}
	return nil
}

func decompressFile(cfg *config.Config, logg logger.Logger, inPath string, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	d, err := container.NewDecompressor(cfg.CacheSize)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(out)

	frames, err := d.DecompressAll(w, bufio.NewReader(in))
	if err == nil {
		err = w.Flush()
	}
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	logg.Infof("%s -> %s: %d frames", inPath, outPath, frames)
	logg.Debugf("%d trees cached", d.CachedTrees())
	return nil
}

func roundTrip(ctx context.Context, cfg *config.Config, logg logger.Logger, paths []string) error {
	inputs := make([][]byte, 0, len(paths))
	names := make([]string, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if len(data) == 0 {
			logg.Infof("%s: empty, skipped", path)
			continue
		}
		inputs = append(inputs, data)
		names = append(names, path)
	}

	encoded, err := huffman.EncodeAll(ctx, inputs, cfg.Jobs)
	if err != nil {
		return err
	}
	decoded, err := huffman.DecodeAll(ctx, encoded, cfg.Jobs)
	if err != nil {
		return err
	}

	for i, enc := range encoded {
		if !bytes.Equal(inputs[i], decoded[i]) {
			return fmt.Errorf("%s: decoded data differs from input", names[i])
		}
		logg.Infof("%s: %d bytes -> %d bits + %d padding (%s)", names[i], len(inputs[i]), enc.BitLength(), enc.Padding, ratio(int64(len(enc.Data)), int64(len(inputs[i]))))
		logg.Debugf("%s: %v", names[i], &enc.Codes)
	}
	return nil
}

func ratio(compressed int64, original int64) string {
	if original == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(compressed)/float64(original))
}
