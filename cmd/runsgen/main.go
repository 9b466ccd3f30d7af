// Command runsgen seeds a history file with synthetic completion times so the
// statistics endpoints have something to show.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-posemaze/config"
	logger "github.com/beka-birhanu/vinom-posemaze/infrastruture/log"
	"github.com/beka-birhanu/vinom-posemaze/infrastruture/runstore"
	"github.com/beka-birhanu/vinom-posemaze/service"
)

func main() {
	n := flag.Int("n", 100, "number of runs to generate")
	seed := flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	out := flag.String("out", config.Envs.HistoryFile, "history file to append to")
	flag.Parse()

	log, _ := logger.New("RUNSGEN", config.ColorCyan, os.Stdout)
	if *n <= 0 {
		log.Error("-n must be positive")
		os.Exit(2)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	store := runstore.NewFileStore(*out)
	runs := service.SyntheticRuns(rand.New(rand.NewSource(*seed)), *n)
	for _, v := range runs {
		if err := store.Append(context.Background(), v); err != nil {
			log.Error(fmt.Sprintf("Writing %s: %v", *out, err))
			os.Exit(1)
		}
	}

	s := service.Summarize(runs)
	log.Info(fmt.Sprintf("Wrote %d runs to %s (mean %.2fs, median %.2fs)", s.Count, *out, s.Mean, s.Median))
}
