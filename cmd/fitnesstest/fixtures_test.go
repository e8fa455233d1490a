package fitnesstest

import (
	"context"
	"os"
	"testing"

	"github.com/Yandex-Practicum/go-fitness-tracker/internal/fork"
	"github.com/rekby/fixenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Env struct {
	fixenv.EnvT
	assert.Assertions
	Require *require.Assertions
	Ctx     context.Context

	t testing.TB
}

func New(t testing.TB) *Env {
	ctx, ctxCancel := context.WithCancel(context.Background())
	t.Cleanup(ctxCancel)

	res := Env{
		EnvT:       *fixenv.NewEnv(t),
		Assertions: *assert.New(t),
		Require:    require.New(t),
		t:          t,
		Ctx:        ctx,
	}
	return &res
}

func (e *Env) Fatalf(format string, args ...any) {
	e.t.Fatalf(format, args...)
}

func (e *Env) Logf(format string, args ...any) {
	e.t.Logf(format, args...)
}

func ExistPath(e *Env, filePath string) string {
	return fixenv.Cache(&e.EnvT, filePath, nil, func() (string, error) {
		e.Logf("Checking file exists: %q", filePath)
		_, err := os.Stat(filePath)
		if err != nil {
			return "", err
		}
		return filePath, nil
	})
}

func TrackerPath(e *Env) string {
	return ExistPath(e, flagTrackerBinaryPath)
}

// RunResult is the outcome of a finished tracker process
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// RunTracker runs tracker binary to completion
func RunTracker(e *Env, args ...string) RunResult {
	command := TrackerPath(e)
	cacheKey := append([]string{command}, args...)
	return fixenv.Cache(&e.EnvT, cacheKey, nil, func() (RunResult, error) {
		res, err := runTracker(e.Ctx, command, args...)
		if err != nil {
			return RunResult{}, err
		}
		e.Logf("Tracker %q exited with code %d", command, res.ExitCode)
		return res, nil
	})
}

func runTracker(ctx context.Context, command string, args ...string) (RunResult, error) {
	ctx, cancel := context.WithTimeout(ctx, flagRunTimeout)
	defer cancel()

	p := fork.NewProcess(ctx, command, fork.WithArgs(args...))
	exitCode, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}

	return RunResult{
		ExitCode: exitCode,
		Stdout:   string(p.Stdout()),
		Stderr:   string(p.Stderr()),
	}, nil
}
