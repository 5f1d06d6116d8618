// Package profiling writes CPU and heap profiles requested on the command line.
package profiling

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"
)

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofStopCPUProfile   = pprof.StopCPUProfile
	pprofWriteHeapProfile = pprof.WriteHeapProfile
	memProfilingInterval  = 30 * time.Second
)

var stderr io.Writer = os.Stderr

// DoCPUProfiling starts a CPU profile written to file.
// The returned func stops profiling and is never nil.
func DoCPUProfiling(file string) func() {
	f, err := osCreate(file)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "could not create CPU profile: %v\n", err)
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		_, _ = fmt.Fprintf(stderr, "could not start CPU profile: %v\n", err)
		_ = f.Close()
		return func() {}
	}
	stop := pprofStopCPUProfile
	return func() {
		stop()
		_ = f.Close()
	}
}

// DoMemProfiling rewrites a heap profile to file periodically while the
// navigator runs. The returned func writes a final profile and stops.
func DoMemProfiling(file string) func() {
	create, writeHeap, errOut := osCreate, pprofWriteHeapProfile, stderr
	var mu sync.Mutex
	write := func() {
		mu.Lock()
		defer mu.Unlock()
		f, err := create(file)
		if err != nil {
			_, _ = fmt.Fprintf(errOut, "could not create memory profile: %v\n", err)
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err = writeHeap(f); err != nil {
			_, _ = fmt.Fprintf(errOut, "could not write memory profile: %v\n", err)
		}
	}

	done := make(chan struct{})
	ticker := time.NewTicker(memProfilingInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				write()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			write()
		})
	}
}
