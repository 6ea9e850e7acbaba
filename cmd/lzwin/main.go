// Command lzwin compresses and decompresses files with the lzwin format.
//
// Output is written to a temporary file in the destination directory and
// renamed into place only after the whole pass succeeds, so an
// interrupted run leaves no partial output behind.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/PaulWendt96/lzwin"
)

const usage = "usage: lzwin [-window N] [-lookahead N] {compress|decompress} <input> <output>"

func main() {
	window := flag.Int("window", lzwin.MaxWindowSize, "sliding window size (capped at 255)")
	lookahead := flag.Int("lookahead", 20, "lookahead buffer size")
	flag.Parse()

	if flag.NArg() != 3 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	mode, inPath, outPath := flag.Arg(0), flag.Arg(1), flag.Arg(2)
	cfg := &lzwin.Config{WindowSize: *window, LookaheadSize: *lookahead}

	var err error
	switch mode {
	case "compress":
		err = compressFile(inPath, outPath, cfg)
	case "decompress":
		err = decompressFile(inPath, outPath, cfg)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q: must be compress or decompress\n", mode)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "lzwin:", err)
		os.Exit(1)
	}
	fmt.Printf("%sed %s -> %s\n", mode, inPath, outPath)
}

func compressFile(inPath, outPath string, cfg *lzwin.Config) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	return writeAtomic(outPath, func(w io.Writer) error {
		_, err := lzwin.Compress(w, in, cfg)
		return err
	})
}

func decompressFile(inPath, outPath string, cfg *lzwin.Config) error {
	src, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	out, err := lzwin.Decompress(src, cfg)
	if err != nil {
		return err
	}

	return writeAtomic(outPath, func(w io.Writer) error {
		_, err := w.Write(out)
		return err
	})
}

// writeAtomic writes through a temp file next to path and renames it into
// place only if write succeeds.
func writeAtomic(path string, write func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".lzwin-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
