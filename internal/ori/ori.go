// Package ori is for finding a likely origin of replication in a DNA sequence
// using a sliding window over its base composition.
package ori

import (
	"errors"
	"fmt"
	"math"
)

const (
	// ScanWindow is the length of each window that gets scored
	ScanWindow = 1000

	// Stride is the distance between the start of neighboring windows
	Stride = 100

	// Window is one less than the length of the sequence returned from Locate.
	// The returned region is Window+1 bp, not ScanWindow bp
	Window = 500
)

// ErrSequenceTooShort is returned when a sequence can't fit a single scan window.
var ErrSequenceTooShort = errors.New("sequence too short to scan for an origin of replication")

// Locator scores windows of a sequence and picks the best one.
type Locator struct {
	// ScanWindow is the length of the scored windows
	ScanWindow int

	// Stride is the step between the offsets of scored windows
	Stride int

	// Window sets the returned length (Window + 1)
	Window int
}

// Result is the winning window of a scan.
type Result struct {
	// Offset is the index of the window's start in the scanned sequence
	Offset int `json:"offset"`

	// Score of the ScanWindow-length window at Offset
	Score float64 `json:"score"`

	// Seq is the Window+1 bp slice of the sequence starting at Offset
	Seq string `json:"seq"`
}

// NewLocator returns a Locator with the default window sizes.
func NewLocator() Locator {
	return Locator{
		ScanWindow: ScanWindow,
		Stride:     Stride,
		Window:     Window,
	}
}

// Locate returns the Window+1 bp subsequence of seq starting at the
// highest scoring window, see Locator.Locate.
func Locate(seq string) (string, error) {
	res, err := NewLocator().Locate(seq)
	return res.Seq, err
}

// Locate scans seq at offsets 0, Stride, 2*Stride... up to, but not including,
// len(seq)-ScanWindow. The first window with the strictly greatest Score wins.
//
// The returned Seq is cut from seq itself, so it's Window+1 bp long even
// though ScanWindow bp were scored.
func (l Locator) Locate(seq string) (Result, error) {
	if l.Stride < 1 {
		return Result{}, fmt.Errorf("invalid stride %d: must be positive", l.Stride)
	}
	if l.ScanWindow < 1 {
		return Result{}, fmt.Errorf("invalid scan window %d: must be positive", l.ScanWindow)
	}
	if l.Window < 0 {
		return Result{}, fmt.Errorf("invalid window %d: must not be negative", l.Window)
	}

	last := len(seq) - l.ScanWindow
	if last <= 0 {
		return Result{}, fmt.Errorf(
			"%w: %d bp with a %d bp scan window",
			ErrSequenceTooShort, len(seq), l.ScanWindow,
		)
	}

	best := Result{Score: math.Inf(-1)}
	for i := 0; i < last; i += l.Stride {
		if score := Score(seq[i : i+l.ScanWindow]); score > best.Score {
			best.Offset = i
			best.Score = score
		}
	}

	end := best.Offset + l.Window + 1
	if end > len(seq) {
		end = len(seq)
	}
	best.Seq = seq[best.Offset:end]

	return best, nil
}

// Score favors AT rich windows with balanced G and C counts.
func Score(w string) float64 {
	return ATFraction(w) - math.Abs(GCSkew(w))
}

// ATFraction is the ratio of A and T bases to all bases in w. Empty windows are 0.
func ATFraction(w string) float64 {
	if len(w) == 0 {
		return 0
	}

	at := 0
	for i := 0; i < len(w); i++ {
		if w[i] == 'A' || w[i] == 'T' {
			at++
		}
	}

	return float64(at) / float64(len(w))
}

// GCSkew is (G - C) / (G + C). It's 0 when there are no Gs or Cs.
func GCSkew(w string) float64 {
	g, c := 0, 0
	for i := 0; i < len(w); i++ {
		switch w[i] {
		case 'G':
			g++
		case 'C':
			c++
		}
	}

	if g+c == 0 {
		return 0
	}

	return float64(g-c) / float64(g+c)
}
