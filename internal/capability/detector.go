// Package capability derives which validation tiers the host can support.
// Detection is purely local: installed model assets, a remote-provider
// registry if one is configured, and a coarse hardware-class proxy. No
// network calls are made; whether a reachable provider actually answers is
// the tiers' own concern.
package capability

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/quizkit/verdict/internal/match"
)

// Hardware floors per tier. Below these the tier would blow its time budget
// on commodity devices, so it is reported as unsupported.
const (
	embeddingMinCores = 2
	embeddingMinBytes = 2 << 30
	judgeMinCores     = 4
	judgeMinBytes     = 4 << 30
)

// Model asset layout under the model directory. A tier's model counts as
// installed when its subdirectory contains at least one regular file.
const (
	embeddingAssetDir = "embedding"
	judgeAssetDir     = "judge"
)

// Detector computes a device capability profile once and serves it from
// cache until Invalidate is called (after installing or removing a model
// asset).
type Detector struct {
	modelDir string

	hasRemoteEmbed func() bool
	hasRemoteGen   func() bool
	numCPU         func() int
	memoryBytes    func() uint64

	mu     sync.Mutex
	cached *match.Capability
}

// Option overrides one detection input, mainly for tests.
type Option func(*Detector)

// WithProviders feeds the remote-provider registry into detection, so a
// configured provider counts as an installed model.
func WithProviders(hasEmbed, hasGen func() bool) Option {
	return func(d *Detector) {
		d.hasRemoteEmbed = hasEmbed
		d.hasRemoteGen = hasGen
	}
}

// WithHardware fixes the hardware probe to the given values.
func WithHardware(cores int, memBytes uint64) Option {
	return func(d *Detector) {
		d.numCPU = func() int { return cores }
		d.memoryBytes = func() uint64 { return memBytes }
	}
}

// NewDetector builds a detector over the given model asset directory.
func NewDetector(modelDir string, opts ...Option) *Detector {
	d := &Detector{
		modelDir:       modelDir,
		hasRemoteEmbed: func() bool { return false },
		hasRemoteGen:   func() bool { return false },
		numCPU:         runtime.NumCPU,
		memoryBytes:    availableMemory,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect returns the cached capability profile, computing it on first call.
func (d *Detector) Detect() match.Capability {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cached == nil {
		profile := d.probe()
		d.cached = &profile
		slog.Debug("device capability detected",
			"maxSupportedTier", profile.MaxSupportedTier,
			"hasEmbeddingModel", profile.HasEmbeddingModel,
			"hasLLMModel", profile.HasLLMModel)
	}
	return *d.cached
}

// Invalidate discards the cached profile. Call after installing or removing
// a model asset; the next Detect re-probes.
func (d *Detector) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cached = nil
}

func (d *Detector) probe() match.Capability {
	cores := d.numCPU()
	mem := d.memoryBytes()

	hasEmbed := d.hasRemoteEmbed() || hasAsset(d.modelDir, embeddingAssetDir)
	hasGen := d.hasRemoteGen() || hasAsset(d.modelDir, judgeAssetDir)

	embedOK := hasEmbed && fits(cores, mem, embeddingMinCores, embeddingMinBytes)
	genOK := hasGen && fits(cores, mem, judgeMinCores, judgeMinBytes)

	maxTier := match.Tier1
	if embedOK {
		maxTier = match.Tier2
	}
	if genOK {
		maxTier = match.Tier3
	}

	return match.Capability{
		MaxSupportedTier:  maxTier,
		HasEmbeddingModel: embedOK,
		HasLLMModel:       genOK,
	}
}

// fits applies the hardware floor. Zero memory means the probe could not
// read it on this platform; only a known-too-small reading disqualifies.
func fits(cores int, mem uint64, minCores int, minBytes uint64) bool {
	if cores < minCores {
		return false
	}
	return mem == 0 || mem >= minBytes
}

// hasAsset reports whether dir/sub contains at least one regular file.
func hasAsset(dir, sub string) bool {
	if dir == "" {
		return false
	}
	entries, err := os.ReadDir(filepath.Join(dir, sub))
	if err != nil {
		return false
	}
	for _, e := range entries {
		if e.Type().IsRegular() {
			return true
		}
	}
	return false
}

// availableMemory reads MemTotal from /proc/meminfo. Returns 0 where the
// file does not exist or cannot be parsed.
func availableMemory() uint64 {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return 0
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0
		}
		return kb << 10
	}
	return 0
}
