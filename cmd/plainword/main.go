// plainword CLI - encodes files as plain-language text and decodes them back
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/opencollector/plainword-go"
	"github.com/opencollector/plainword-go/internal/config"
)

var log = commonlog.GetLogger("plainword")

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	verbosity := flag.Int("v", 0, "Log verbosity (-4 silent .. 2 debug)")
	logPath := flag.String("log", "", "Log to this file instead of stderr")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: plainword [options] encode|decode <input> <output>\n\n")
		fmt.Fprintf(os.Stderr, "Encodes any file as short English words, or decodes such text back.\n")
		fmt.Fprintf(os.Stderr, "Use - for stdin or stdout.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  plainword encode photo.jpg photo.txt\n")
		fmt.Fprintf(os.Stderr, "  plainword decode photo.txt photo.jpg\n")
		fmt.Fprintf(os.Stderr, "  cat data.bin | plainword -config plainword.toml encode - -\n")
	}
	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}
	mode := flag.Arg(0)
	isEncode := strings.HasPrefix(mode, "e")
	isDecode := strings.HasPrefix(mode, "d")
	if !isEncode && !isDecode {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "v":
			cfg.Log.Verbosity = *verbosity
		case "log":
			cfg.Log.File = *logPath
		}
	})
	if cfg.Log.File != "" {
		commonlog.Configure(cfg.Log.Verbosity, &cfg.Log.File)
	} else {
		commonlog.Configure(cfg.Log.Verbosity, nil)
	}

	start := time.Now()
	if isEncode {
		err = encode(flag.Arg(1), flag.Arg(2), cfg.Options())
	} else {
		err = decode(flag.Arg(1), flag.Arg(2))
	}
	if err != nil {
		log.Errorf("%s failed: %s", mode, err.Error())
		os.Exit(1)
	}
	if isEncode {
		log.Noticef("encoding completed in %s", time.Since(start))
	} else {
		log.Noticef("decoding completed in %s", time.Since(start))
	}
}

func encode(inPath, outPath string, opts []plainword.Option) error {
	in, err := openInput(inPath)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := createOutput(outPath)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(out)
	w := plainword.NewWriter(bw, opts...)
	n, err := io.Copy(w, bufio.NewReader(in))
	if err != nil {
		out.Close()
		return err
	}
	if err := w.Close(); err != nil {
		out.Close()
		return err
	}
	log.Infof("encoded %d bytes from %s", n, inPath)
	return out.Close()
}

func decode(inPath, outPath string) error {
	in, err := openInput(inPath)
	if err != nil {
		return err
	}
	defer in.Close()
	r := plainword.NewReader(bufio.NewReader(in))
	out, err := createOutput(outPath)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(out)
	n, err := io.Copy(bw, r)
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		out.Close()
		return err
	}
	log.Infof("decoded %d bytes from %s", n, inPath)
	if d := r.Discarded(); d > 0 {
		log.Infof("ignored %d words that are not part of the encoding", d)
	}
	return out.Close()
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	return f, nil
}

func createOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", path, err)
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
