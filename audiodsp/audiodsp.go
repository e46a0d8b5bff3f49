// Package audiodsp implements a streaming per-channel audio effect node:
// compressor -> three-band EQ -> gain -> hard clamp. It operates on PCM
// blocks at the host sample rate and carries envelope/filter state across
// blocks for as long as the node stays alive.
package audiodsp

import "math"

// CompressorParams configures the dynamics stage.
type CompressorParams struct {
	Enabled        bool
	ThresholdDB    float64
	Ratio          float64
	AttackSeconds  float64
	ReleaseSeconds float64
}

// EQParams holds the gain, in dB, applied to each of the three bands.
type EQParams struct {
	Enabled bool
	LowDB   float64
	MidDB   float64
	HighDB  float64
}

// Params bundles every stage's configuration plus the final gain, applied
// atomically at the next block boundary.
type Params struct {
	Compressor CompressorParams
	EQ         EQParams
	GainDB     float64
	Bypass     bool
}

// DefaultParams enables the compressor (-24 dB threshold, 4:1 ratio, 3 ms
// attack, 250 ms release) and a flat 0 dB EQ, with 0 dB output gain.
func DefaultParams() Params {
	return Params{
		Compressor: CompressorParams{Enabled: true, ThresholdDB: -24, Ratio: 4, AttackSeconds: 0.003, ReleaseSeconds: 0.25},
		EQ:         EQParams{Enabled: true},
		GainDB:     0,
	}
}

const (
	lowCutoffHz  = 200.0
	highCutoffHz = 4000.0
)

// channelState carries the per-sample envelope and filter memory that must
// persist across blocks for a single channel.
type channelState struct {
	compressorEnv float64
	lowState      float64
	highDelay     float64
}

// Node is a streaming audio effect processor. It is not safe for concurrent
// use by multiple goroutines; parameter updates must be applied between
// ProcessBlock calls, at a block boundary.
type Node struct {
	sampleRate float64
	params     Params
	pending    *Params
	channels   []channelState
}

// NewNode constructs a node bound to the given host sample rate. It holds no
// channel state until ProcessBlock allocates it for the channels it sees.
func NewNode(sampleRate float64) *Node {
	return &Node{sampleRate: sampleRate, params: DefaultParams()}
}

// SetParams queues a parameter update; it takes effect at the start of the
// next ProcessBlock call, never mid-block.
func (n *Node) SetParams(p Params) {
	next := p
	n.pending = &next
}

func (n *Node) ensureChannels(count int) {
	for len(n.channels) < count {
		n.channels = append(n.channels, channelState{})
	}
}

// ProcessBlock runs the pipeline in place over one block of per-channel PCM
// samples, applying any queued parameter update at the block boundary.
func (n *Node) ProcessBlock(block [][]float32) {
	if n.pending != nil {
		n.params = *n.pending
		n.pending = nil
	}
	n.ensureChannels(len(block))

	if n.params.Bypass {
		return
	}

	for ch, samples := range block {
		state := &n.channels[ch]
		for i, s := range samples {
			x := float64(s)
			if n.params.Compressor.Enabled {
				x = n.compress(x, state)
			}
			if n.params.EQ.Enabled {
				x = n.equalize(x, state)
			}
			x *= math.Pow(10, n.params.GainDB/20)
			samples[i] = float32(clamp(x, -1, 1))
		}
	}
}

func (n *Node) compress(x float64, state *channelState) float64 {
	p := n.params.Compressor
	absX := math.Abs(x)
	if absX < 1e-4 {
		absX = 1e-4
	}
	inDb := 20 * math.Log10(absX)

	reduction := 0.0
	if inDb > p.ThresholdDB {
		over := inDb - p.ThresholdDB
		reduction = over * (1 - 1/p.Ratio)
	}

	var alpha float64
	if reduction > state.compressorEnv {
		alpha = math.Exp(-1 / (n.sampleRate * p.AttackSeconds))
	} else {
		alpha = math.Exp(-1 / (n.sampleRate * p.ReleaseSeconds))
	}
	state.compressorEnv = alpha*state.compressorEnv + (1-alpha)*reduction

	return x * math.Pow(10, -state.compressorEnv/20)
}

func (n *Node) equalize(x float64, state *channelState) float64 {
	eq := n.params.EQ

	alphaLo := 1 - math.Exp(-2*math.Pi*lowCutoffHz/n.sampleRate)
	state.lowState += alphaLo * (x - state.lowState)
	low := state.lowState

	alphaHi := 1 - math.Exp(-2*math.Pi*highCutoffHz/n.sampleRate)
	state.highDelay += alphaHi * (x - state.highDelay)
	high := x - state.highDelay

	mid := x - low - high

	low *= math.Pow(10, eq.LowDB/20)
	mid *= math.Pow(10, eq.MidDB/20)
	high *= math.Pow(10, eq.HighDB/20)

	return low + mid + high
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
