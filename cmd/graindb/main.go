// Command graindb is a thin readline-based REPL driving the engine
// end-to-end, outside the core's scope.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/graindb/graindb/internal/config"
	"github.com/graindb/graindb/internal/engine"
	"github.com/graindb/graindb/internal/result"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "path to a YAML config file")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			slog.Error("graindb: failed to load config", "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	db, err := engine.Open(cfg.Storage.File, engine.Options{
		PoolSize: cfg.Storage.PoolSize,
		K:        cfg.Storage.K,
		WALDir:   cfg.Storage.WALDir,
	})
	if err != nil {
		slog.Error("graindb: failed to open database", "err", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	rl, err := readline.New("graindb> ")
	if err != nil {
		slog.Error("graindb: failed to start readline", "err", err)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Fprintln(rl.Stdout(), "graindb — type SQL, or \\q to quit")
	runREPL(rl, db)
}

func runREPL(rl *readline.Instance, db *engine.Database) {
	formatter := result.TextFormatter{}
	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return
		}
		if err != nil {
			slog.Error("graindb: readline error", "err", err)
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == `\q` {
			return
		}

		results, err := db.ExecuteSQL(line)
		if err != nil {
			fmt.Fprintln(rl.Stderr(), "error:", err)
			continue
		}
		for _, r := range results {
			if r.Schema == nil {
				continue
			}
			_ = formatter.Format(rl.Stdout(), r.Schema, r.Tuples)
		}
	}
}
