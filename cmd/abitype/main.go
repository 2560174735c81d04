package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/JacksonBernier523/eth-abi/coder"
	"github.com/JacksonBernier523/eth-abi/coders"
	"github.com/JacksonBernier523/eth-abi/registry"
)

func main() {
	var (
		decoder     = flag.Bool("decoder", false, "Resolve decoders instead of encoders")
		schema      = flag.Bool("schema", false, "Print the settings JSON schema of each coder class")
		witOut      = flag.Bool("wit", false, "Print the WIT mapping and canonical ABI layout")
		list        = flag.Bool("list", false, "List registered labels and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Debug logging")
	)
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *decoder {
		cfg.Direction = "decoder"
	}
	if *witOut {
		cfg.WIT = true
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	coder.SetLogger(log)

	reg := registry.New(registry.WithLogger(log))
	if err := coders.Register(reg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *list {
		fmt.Println(strings.Join(reg.Labels(), "\n"))
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(reg, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: abitype [-decoder] [-wit] [-schema] TYPE...")
		fmt.Fprintln(os.Stderr, "       abitype -list")
		fmt.Fprintln(os.Stderr, "       abitype -i  (interactive mode)")
		os.Exit(1)
	}

	if !run(reg, log, cfg, flag.Args(), *schema) {
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

// run describes each type and reports whether all of them resolved.
func run(reg *registry.Registry, log *zap.Logger, cfg config, types []string, withSchema bool) bool {
	ok := true
	for _, typeStr := range types {
		d, err := describe(reg, cfg.Direction, typeStr, cfg.WIT)
		if err != nil {
			log.Debug("resolve failed", zap.String("type", typeStr), zap.Error(err))
			fmt.Fprintf(os.Stderr, "%s: %v\n", typeStr, err)
			ok = false
			continue
		}
		fmt.Print(d)

		if withSchema {
			out, err := json.MarshalIndent(coder.SchemaOf(d.coder), "  ", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: schema: %v\n", typeStr, err)
				ok = false
				continue
			}
			fmt.Printf("  schema: %s\n", out)
		}
	}
	return ok
}
