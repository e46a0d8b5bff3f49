package audiodsp

import (
	"math"
	"testing"
)

func TestProcessBlockClampsToUnitRange(t *testing.T) {
	n := NewNode(48000)
	n.SetParams(Params{
		Compressor: CompressorParams{Enabled: false},
		EQ:         EQParams{Enabled: false},
		GainDB:     40, // large gain to force clipping
	})
	block := [][]float32{{0.5, -0.5, 0.9}}
	n.ProcessBlock(block)
	for _, s := range block[0] {
		if s > 1 || s < -1 {
			t.Fatalf("expected sample clamped to [-1,1], got %v", s)
		}
	}
}

func TestBypassLeavesSamplesUnchanged(t *testing.T) {
	n := NewNode(48000)
	n.SetParams(Params{Bypass: true})
	block := [][]float32{{0.25, -0.33, 0.8}}
	want := []float32{0.25, -0.33, 0.8}
	n.ProcessBlock(block)
	for i, s := range block[0] {
		if s != want[i] {
			t.Fatalf("bypass modified sample %d: got %v want %v", i, s, want[i])
		}
	}
}

func TestCompressorReducesLoudSignalMoreThanQuiet(t *testing.T) {
	n := NewNode(48000)
	n.SetParams(Params{
		Compressor: CompressorParams{Enabled: true, ThresholdDB: -20, Ratio: 8, AttackSeconds: 0.001, ReleaseSeconds: 0.1},
		EQ:         EQParams{Enabled: false},
	})
	loud := make([]float32, 2000)
	for i := range loud {
		loud[i] = 0.9
	}
	block := [][]float32{loud}
	n.ProcessBlock(block)

	settled := float64(block[0][len(block[0])-1])
	if settled >= 0.9 {
		t.Fatalf("expected sustained loud signal to be gain-reduced, got %v", settled)
	}
}

func TestGainAppliesExpectedDBChange(t *testing.T) {
	n := NewNode(48000)
	n.SetParams(Params{
		Compressor: CompressorParams{Enabled: false},
		EQ:         EQParams{Enabled: false},
		GainDB:     -6,
	})
	block := [][]float32{{0.5}}
	n.ProcessBlock(block)
	want := 0.5 * math.Pow(10, -6.0/20)
	got := float64(block[0][0])
	if diff := got - want; diff > 0.001 || diff < -0.001 {
		t.Fatalf("expected gain-reduced sample ~%v, got %v", want, got)
	}
}

func TestParamUpdateDeferredToNextBlock(t *testing.T) {
	n := NewNode(48000)
	n.SetParams(Params{Compressor: CompressorParams{Enabled: false}, EQ: EQParams{Enabled: false}, GainDB: 0})
	first := [][]float32{{0.5}}
	n.ProcessBlock(first)
	if first[0][0] != 0.5 {
		t.Fatalf("expected first block unaffected by a not-yet-applied update")
	}

	n.SetParams(Params{Compressor: CompressorParams{Enabled: false}, EQ: EQParams{Enabled: false}, GainDB: -6})
	second := [][]float32{{0.5}}
	n.ProcessBlock(second)
	if second[0][0] == 0.5 {
		t.Fatalf("expected queued update applied at the next block boundary")
	}
}

func TestEQPreservesSilence(t *testing.T) {
	n := NewNode(48000)
	n.SetParams(Params{
		Compressor: CompressorParams{Enabled: false},
		EQ:         EQParams{Enabled: true, LowDB: 6, MidDB: -3, HighDB: 2},
	})
	block := [][]float32{{0, 0, 0, 0}}
	n.ProcessBlock(block)
	for _, s := range block[0] {
		if s != 0 {
			t.Fatalf("expected EQ to leave silence at zero, got %v", s)
		}
	}
}
