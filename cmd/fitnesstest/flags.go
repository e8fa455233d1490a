package fitnesstest

import (
	"flag"
	"time"
)

var (
	flagTrackerBinaryPath string
	flagRunTimeout        time.Duration
	flagParallelRuns      int
)

func init() {
	flag.StringVar(&flagTrackerBinaryPath, "binary-path", "", "path to target tracker binary")
	flag.DurationVar(&flagRunTimeout, "run-timeout", 10*time.Second, "maximum time a single tracker run may take")
	flag.IntVar(&flagParallelRuns, "parallel-runs", 4, "number of simultaneous tracker runs in determinism check")
}
