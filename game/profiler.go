package game

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profiler captures CPU profiles and execution traces on demand
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, duration time.Duration) *Profiler {
	return &Profiler{
		captureCooldown: 10 * time.Second, // Don't capture more than once every 10 seconds
		profilesDir:     dir,
		captureDuration: duration,
	}
}

// CaptureProfile starts a CPU profile and a trace in the background. It
// returns an error right away if a capture is running or was made recently.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}
	if !p.lastCaptureTime.IsZero() && time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", time.Since(p.lastCaptureTime).Round(time.Second))
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return fmt.Errorf("create profiles dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()

	stem := filepath.Join(p.profilesDir, fmt.Sprintf("%s-%s", reason, time.Now().Format("20060102-150405")))
	outputs := []profileOutput{
		{name: "CPU profile", path: stem + ".cpu.prof", start: pprof.StartCPUProfile, stop: pprof.StopCPUProfile},
		{name: "trace", path: stem + ".trace", start: trace.Start, stop: trace.Stop},
	}

	go func() {
		var wg sync.WaitGroup
		for _, out := range outputs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := p.record(out); err != nil {
					log.Printf("Profiler: %s: %v", out.name, err)
					return
				}
				log.Printf("Profiler: %s written to %s", out.name, out.path)
			}()
		}
		wg.Wait()

		logMemStats()

		p.mu.Lock()
		p.isProfiling = false
		p.mu.Unlock()
	}()

	return nil
}

// profileOutput is one runtime recorder and the file it streams into
type profileOutput struct {
	name  string
	path  string
	start func(io.Writer) error
	stop  func()
}

// record runs out for the capture duration
func (p *Profiler) record(out profileOutput) error {
	file, err := os.Create(out.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", out.path, err)
	}
	defer file.Close()

	if err := out.start(file); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	time.Sleep(p.captureDuration)
	out.stop()
	return nil
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

// logMemStats logs the heap after a capture so slow frames can be matched
// against allocation pressure
func logMemStats() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("Profiler: heap %d KB in %d objects, %d GCs paused %v in total",
		m.Alloc/1024, m.HeapObjects, m.NumGC, time.Duration(m.PauseTotalNs))
}
