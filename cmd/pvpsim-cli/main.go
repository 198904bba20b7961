package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/bitcloud2/pvpoke-sub001/internal/battle"
	blog "github.com/bitcloud2/pvpoke-sub001/internal/log"
	"github.com/bitcloud2/pvpoke-sub001/internal/roster"
	"github.com/bitcloud2/pvpoke-sub001/internal/typechart"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "sim":
		runSim(os.Args[2:])
	case "batch":
		runBatch(os.Args[2:])
	case "species":
		runSpecies(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  pvpsim sim --p1 SPECIES --p2 SPECIES [options]")
	fmt.Println("  pvpsim batch --p1 SPECIES --p2 SPECIES --n N [options]")
	fmt.Println("  pvpsim species [--roster FILE]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  sim      Run a single battle and print the timeline")
	fmt.Println("  batch    Run N seeded battles and print aggregate stats")
	fmt.Println("  species  List the species in the roster")
}

// matchupFlags registers the flags shared by sim and batch.
type matchupFlags struct {
	rosterFile *string
	p1, p2     *string
	moves1     *string
	moves2     *string
	shields1   *int
	shields2   *int
	bait       *bool
	seed       *int64
	maxTurns   *int
}

func newMatchupFlags(fs *flag.FlagSet) *matchupFlags {
	return &matchupFlags{
		rosterFile: fs.String("roster", "", "path to roster YAML file (default: built-in roster)"),
		p1:         fs.String("p1", "", "species for side 1"),
		p2:         fs.String("p2", "", "species for side 2"),
		moves1:     fs.String("moves1", "", "comma-separated charged move IDs for side 1"),
		moves2:     fs.String("moves2", "", "comma-separated charged move IDs for side 2"),
		shields1:   fs.Int("shields1", battle.DefaultShields, "starting shields for side 1"),
		shields2:   fs.Int("shields2", battle.DefaultShields, "starting shields for side 2"),
		bait:       fs.Bool("bait", false, "both sides bait shields with cheap charged moves"),
		seed:       fs.Int64("seed", 1, "RNG seed"),
		maxTurns:   fs.Int("max-turns", battle.DefaultMaxTurns, "turn cap"),
	}
}

func (mf *matchupFlags) loadRoster() *roster.Roster {
	if *mf.rosterFile == "" {
		return roster.Builtin()
	}
	ros, err := roster.Load(*mf.rosterFile)
	if err != nil {
		fatal(err)
	}
	return ros
}

// build constructs both combatants from the flag values.
func (mf *matchupFlags) build(ros *roster.Roster) [2]*battle.Pokemon {
	if *mf.p1 == "" || *mf.p2 == "" {
		fatal(fmt.Errorf("both --p1 and --p2 are required"))
	}
	names := [2]string{*mf.p1, *mf.p2}
	moves := [2]string{*mf.moves1, *mf.moves2}

	var out [2]*battle.Pokemon
	for i := range names {
		opts := roster.BuildOptions{BaitShields: *mf.bait}
		if moves[i] != "" {
			opts.ChargedMoves = strings.Split(moves[i], ",")
		}
		p, err := ros.Build(names[i], opts)
		if err != nil {
			fatal(fmt.Errorf("side %d: %w", i+1, err))
		}
		out[i] = p
	}
	return out
}

func (mf *matchupFlags) config() battle.Config {
	cfg := battle.DefaultConfig()
	cfg.Shields = [2]int{*mf.shields1, *mf.shields2}
	cfg.Seed = *mf.seed
	cfg.MaxTurns = *mf.maxTurns
	return cfg
}

func runSim(args []string) {
	fs := flag.NewFlagSet("sim", flag.ExitOnError)
	mf := newMatchupFlags(fs)
	out := fs.String("out", "", "write the full result as JSON to this file")
	quiet := fs.Bool("quiet", false, "suppress the timeline, print only the outcome")
	fs.Parse(args)

	ros := mf.loadRoster()
	combatants := mf.build(ros)

	cfg := mf.config()
	cfg.Timeline = true
	if *quiet {
		cfg.Logger = blog.NewMemoryLogger()
	} else {
		cfg.Logger = blog.NewTextLogger(os.Stdout)
	}

	b, err := battle.New(cfg, combatants[0], combatants[1])
	if err != nil {
		fatal(err)
	}
	result := b.Run()

	fmt.Println()
	fmt.Printf("%s (CP %d) vs %s (CP %d)\n",
		combatants[0].Species, combatants[0].CP(),
		combatants[1].Species, combatants[1].CP())
	fmt.Printf("Result:  %s after %d turns (%.1fs remaining)\n",
		result.Description, result.Turns, float64(result.TimeRemainingMs)/1000)
	fmt.Printf("Ratings: %d - %d\n", result.Ratings[0], result.Ratings[1])
	fmt.Printf("HP:      %d/%d - %d/%d\n",
		result.HP[0], combatants[0].MaxHP, result.HP[1], combatants[1].MaxHP)

	if *out != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fatal(err)
		}
		if err := os.WriteFile(*out, data, 0644); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote %s\n", *out)
	}
}

func runBatch(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	mf := newMatchupFlags(fs)
	n := fs.Int("n", 100, "number of simulations")
	workers := fs.Int("workers", 8, "concurrent simulations")
	fs.Parse(args)

	if *n < 1 {
		fatal(fmt.Errorf("--n must be at least 1"))
	}
	if *workers < 1 {
		*workers = 1
	}

	ros := mf.loadRoster()
	// Build once to surface roster errors before spinning up workers.
	mf.build(ros)

	type stats struct {
		wins       [2]int
		draws      int
		sumRatings [2]int
		sumTurns   int
	}
	var st stats
	var mu sync.Mutex
	var wg sync.WaitGroup
	jobs := make(chan int, *n)

	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				combatants := mf.build(ros)
				cfg := mf.config()
				cfg.Seed = *mf.seed + int64(i)
				b, err := battle.New(cfg, combatants[0], combatants[1])
				if err != nil {
					fatal(err)
				}
				res := b.Run()

				mu.Lock()
				if res.Winner >= 0 {
					st.wins[res.Winner]++
				} else {
					st.draws++
				}
				st.sumRatings[0] += res.Ratings[0]
				st.sumRatings[1] += res.Ratings[1]
				st.sumTurns += res.Turns
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < *n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	total := float64(*n)
	fmt.Printf("%s vs %s over %d battles (seeds %d..%d)\n",
		*mf.p1, *mf.p2, *n, *mf.seed, *mf.seed+int64(*n)-1)
	fmt.Printf("  %-24s %5.1f%%  (avg rating %d)\n",
		*mf.p1+" wins:", 100*float64(st.wins[0])/total, st.sumRatings[0]/(*n))
	fmt.Printf("  %-24s %5.1f%%  (avg rating %d)\n",
		*mf.p2+" wins:", 100*float64(st.wins[1])/total, st.sumRatings[1]/(*n))
	fmt.Printf("  %-24s %5.1f%%\n", "draws:", 100*float64(st.draws)/total)
	fmt.Printf("  %-24s %.1f\n", "avg turns:", float64(st.sumTurns)/total)
}

func runSpecies(args []string) {
	fs := flag.NewFlagSet("species", flag.ExitOnError)
	rosterFile := fs.String("roster", "", "path to roster YAML file (default: built-in roster)")
	fs.Parse(args)

	ros := roster.Builtin()
	if *rosterFile != "" {
		var err error
		ros, err = roster.Load(*rosterFile)
		if err != nil {
			fatal(err)
		}
	}

	for _, s := range ros.Species() {
		types := s.Types[0].String()
		if s.Types[1] != typechart.TypeNone {
			types += "/" + s.Types[1].String()
		}
		fmt.Printf("%-24s %-16s atk %-3d def %-3d sta %-3d  fast: %s  charged: %s\n",
			s.Name, types, s.Attack, s.Defense, s.Stamina,
			strings.Join(s.FastMoves, ","), strings.Join(s.ChargedMoves, ","))
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
