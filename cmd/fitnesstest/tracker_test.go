package fitnesstest

import (
	"strings"

	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

// TrackerSuite checks tracker binary output against reference formulas
type TrackerSuite struct {
	suite.Suite
}

func (suite *TrackerSuite) SetupSuite() {
	if flagTrackerBinaryPath == "" {
		suite.T().Skip("-binary-path flag is not set, run bin/fitnesstest -binary-path=bin/tracker")
	}
}

func (suite *TrackerSuite) TestExitCode() {
	e := New(suite.T())
	res := RunTracker(e)

	e.Equal(0, res.ExitCode, "Tracker must exit with code 0, stderr: %s", res.Stderr)
	e.Empty(res.Stderr, "Tracker must not write to stderr on success")
}

func (suite *TrackerSuite) TestReports() {
	e := New(suite.T())
	res := RunTracker(e)

	lines := strings.Split(strings.TrimRight(res.Stdout, "\n"), "\n")
	expected := expectedReports()

	e.Require.Len(lines, len(expected), "Tracker must print one line per package, got:\n%s", res.Stdout)
	for i, line := range lines {
		e.Equal(expected[i], line, "Report #%d does not match", i+1)
	}
}

func (suite *TrackerSuite) TestDeterministicOutput() {
	e := New(suite.T())
	command := TrackerPath(e)

	outputs := make([]string, flagParallelRuns)
	g, ctx := errgroup.WithContext(e.Ctx)
	for i := range outputs {
		i := i
		g.Go(func() error {
			res, err := runTracker(ctx, command)
			if err != nil {
				return err
			}
			outputs[i] = res.Stdout
			return nil
		})
	}
	e.Require.NoError(g.Wait(), "Cannot run tracker")

	for i := 1; i < len(outputs); i++ {
		e.Equal(outputs[0], outputs[i], "Tracker output must be the same on every run")
	}
}

func (suite *TrackerSuite) TestIgnoresArguments() {
	e := New(suite.T())
	plain := RunTracker(e)
	withArgs := RunTracker(e, "unexpected", "arguments")

	e.Equal(plain.ExitCode, withArgs.ExitCode)
	e.Equal(plain.Stdout, withArgs.Stdout, "Tracker takes no arguments and must not change output")
}
