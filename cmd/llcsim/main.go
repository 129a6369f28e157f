package main

import (
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eiannone/keyboard"
	"golang.org/x/term"

	"llcsim/internal/config"
	"llcsim/internal/host"
	"llcsim/internal/trace"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults layered under it)")
	tracePath := flag.String("trace", "", "path to the access trace to replay (overrides config)")
	policyFlag := flag.String("policy", "", "replacement policy: LRU, RANDOM, SRRIP, DRRIP, SHiP, EAF, CUSTOM (overrides config)")
	setsFlag := flag.Int("sets", 0, "number of cache sets (overrides config)")
	assocFlag := flag.Int("assoc", 0, "cache associativity (overrides config)")
	seedFlag := flag.Int64("seed", 0, "RNG seed (overrides config, 0 means unset)")
	step := flag.Bool("step", false, "single-step through the trace, pausing for a keypress between accesses")
	verbose := flag.Bool("v", false, "enable verbose logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("llcsim: %v", err)
	}
	applyOverrides(cfg, *tracePath, *policyFlag, *setsFlag, *assocFlag, *seedFlag, *step)

	policy, err := cfg.Validate()
	if err != nil {
		log.Fatalf("llcsim: %v", err)
	}

	printIfVerbose(*verbose, "opening trace %s", cfg.TracePath)
	tr, err := trace.Open(cfg.TracePath)
	if err != nil {
		log.Fatalf("llcsim: %v", err)
	}
	defer tr.Close()

	printIfVerbose(*verbose, "building cache: %d sets x %d ways, policy=%s, seed=%d", cfg.Sets, cfg.Assoc, policy, cfg.Seed)
	cache := host.NewCache(cfg.Sets, cfg.Assoc, policy, cfg.Seed)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	if cfg.Step && term.IsTerminal(int(os.Stdin.Fd())) {
		oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			log.Fatalf("llcsim: step mode: %v", err)
		}
		defer term.Restore(int(os.Stdin.Fd()), oldState)
	}

	done := make(chan struct{})
	start := time.Now()

	go func() {
		defer close(done)
		run(cache, tr, cfg.Step, *verbose)
	}()

	select {
	case <-sigCh:
		printIfVerbose(*verbose, "signal received, stopping replay")
	case <-done:
	}

	elapsed := time.Since(start)
	printIfVerbose(*verbose, "replay finished in %s", elapsed)

	cache.Engine().Report(os.Stdout)
}

// run replays every access in tr against cache, optionally pausing for a
// keypress between accesses (-step). Grounded on the teacher's LC-3
// keyboard-MMIO idiom (internal/lc3/memory.go's MR_KBSR handling), repurposed
// here to pace trace playback instead of servicing a simulated keyboard
// register.
func run(cache *host.Cache, tr *trace.Reader, step, verbose bool) {
	for {
		access, err := tr.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			log.Fatalf("llcsim: %v", err)
		}

		hit, _ := cache.Access(0, access.PC, access.Addr, access.AccessType)
		if verbose {
			log.Printf("pc=0x%x addr=0x%x hit=%v", access.PC, access.Addr, hit)
		}

		if step {
			waitForKeypress()
		}
	}
}

func waitForKeypress() {
	_, key, err := keyboard.GetSingleKey()
	if err != nil {
		log.Fatalf("llcsim: step mode: %v", err)
	}
	if key == keyboard.KeyCtrlC {
		log.Fatal("llcsim: interrupted")
	}
}

func applyOverrides(cfg *config.Config, tracePath, policy string, sets, assoc int, seed int64, step bool) {
	if tracePath != "" {
		cfg.TracePath = tracePath
	}
	if policy != "" {
		cfg.Policy = policy
	}
	if sets != 0 {
		cfg.Sets = sets
	}
	if assoc != 0 {
		cfg.Assoc = assoc
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if step {
		cfg.Step = true
	}
}

func printIfVerbose(verbose bool, format string, v ...interface{}) {
	if verbose {
		log.Printf(format, v...)
	}
}
