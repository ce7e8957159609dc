package main

import (
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/pkg/profile"
)

type pprofConfig struct {
	Mode string `default:""  enum:",cpu,mem,allocs,block,mutex,goroutine,trace" help:"Enable profiling."       placeholder:"MODE"`
	Dir  string `default:"." help:"Profile output directory."                   type:"path"`
}

func (pprofConfig) group() kong.Group {
	var group kong.Group

	group.Key = "pprof"
	group.Title = "Profiling (pprof)"

	return group
}

var modes = map[string]func(*profile.Profile){
	"cpu":       profile.CPUProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"block":     profile.BlockProfile,
	"mutex":     profile.MutexProfile,
	"goroutine": profile.GoroutineProfile,
	"trace":     profile.TraceProfile,
}

// start starts profiling if configured. The returned function stops it.
func (f pprofConfig) start(logger *slog.Logger) (stop func()) {
	mode := modes[f.Mode]
	if mode == nil {
		return func() {}
	}

	logger.Debug("pprof start",
		slog.String("mode", f.Mode),
		slog.String("dir", f.Dir),
	)

	p := profile.Start(mode, profile.ProfilePath(f.Dir), profile.Quiet, profile.NoShutdownHook)

	return func() {
		p.Stop()
		logger.Debug("pprof stop",
			slog.String("mode", f.Mode),
			slog.String("dir", f.Dir),
		)
	}
}
