// Package steim1 implements the Steim-1 first-difference compression codec:
// decoding 64-byte nibble-tagged frames back to absolute 32-bit samples, and
// greedily packing a difference stream into frames on encode.
//
// Reference material: Appendix B of the SEED Reference Manual, 2nd Ed.,
// pp. 119-125 (Federation of Digital Seismic Networks, February 1993).
package steim1

import (
	"encoding/binary"
	"fmt"

	"github.com/crotwell/mseed3/errs"
)

// FrameSize is the fixed byte length of one Steim-1 frame.
const FrameSize = 64

// wordsPerFrame is the number of 4-byte data words following the nibble word.
const wordsPerFrame = 15

var be = binary.BigEndian

// Decode expands a Steim-1 compressed byte block into numSamples absolute
// 32-bit samples.
//
// Fails with errs.ErrCompression if len(data) is not a positive multiple of
// FrameSize, if the decoded sample count does not equal numSamples, or if
// the last decoded sample does not match the frame-0 reverse integration
// constant X(N-1).
func Decode(data []byte, numSamples uint32) ([]int32, error) {
	if len(data) == 0 || len(data)%FrameSize != 0 {
		return nil, fmt.Errorf("%w: encoded data length is not a positive multiple of %d bytes (%d)",
			errs.ErrCompression, FrameSize, len(data))
	}

	numFrames := len(data) / FrameSize

	var x0, xn int32
	samples := make([]int32, 0, numSamples)

	for f := 0; f < numFrames; f++ {
		frame := data[f*FrameSize : (f+1)*FrameSize]
		nibbles := be.Uint32(frame[0:4])

		for i := 1; i <= wordsPerFrame; i++ {
			tag := (nibbles >> (30 - 2*uint(i))) & 0x3
			word := frame[4*i : 4*i+4]

			switch tag {
			case 0:
				switch {
				case f == 0 && i == 1:
					x0 = int32(be.Uint32(word)) //nolint:gosec // reinterpret bits, not a range conversion
				case f == 0 && i == 2:
					xn = int32(be.Uint32(word)) //nolint:gosec
				}
			case 1:
				for _, b := range word {
					samples = appendDiff(samples, int32(int8(b))) //nolint:gosec
				}
			case 2:
				samples = appendDiff(samples, int32(int16(be.Uint16(word[0:2])))) //nolint:gosec
				samples = appendDiff(samples, int32(int16(be.Uint16(word[2:4])))) //nolint:gosec
			case 3:
				samples = appendDiff(samples, int32(be.Uint32(word))) //nolint:gosec
			}
		}
	}

	out := integrate(x0, samples)

	if uint32(len(out)) != numSamples { //nolint:gosec // numSamples bounds out's growth
		return nil, fmt.Errorf("%w: number of samples decompressed doesn't match number in header: %d != %d",
			errs.ErrCompression, len(out), numSamples)
	}

	if len(out) > 0 && out[len(out)-1] != xn {
		return nil, fmt.Errorf("%w: last sample %d does not match reverse integration constant %d",
			errs.ErrCompression, out[len(out)-1], xn)
	}

	return out, nil
}

// appendDiff is a thin append wrapper kept separate from integrate so the
// two decode passes (collect differences, then integrate) read distinctly.
func appendDiff(diffs []int32, d int32) []int32 {
	return append(diffs, d)
}

// integrate turns x0 followed by a difference stream into absolute samples:
// the first sample is x0 itself, and every later sample is the running sum
// of x0 and the differences seen so far.
func integrate(x0 int32, diffs []int32) []int32 {
	out := make([]int32, 0, len(diffs)+1)
	out = append(out, x0)

	last := x0
	for _, d := range diffs {
		last += d
		out = append(out, last)
	}

	return out
}

// Encode packs samples into Steim-1 frames, using at most maxFrames frames
// (0 means unlimited). If maxFrames is reached before all samples are
// consumed, the remaining samples are silently dropped from the returned
// block; the caller is expected to re-invoke Encode with the unconsumed
// tail if more frames are required.
//
// Fails with errs.ErrCompression if samples is empty.
func Encode(samples []int32, maxFrames int) ([]byte, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: samples array is zero size", errs.ErrCompression)
	}

	diffs := make([]int32, len(samples)-1)
	for k := 1; k < len(samples); k++ {
		diffs[k-1] = samples[k] - samples[k-1]
	}

	frames := make([]frame, 0, 1)
	cur := newFrame()
	cur.setWord(1, 0, uint32(samples[0])) //nolint:gosec // reinterpret bits
	slot := 3

	lastEmitted := samples[0]
	i := 0

	for i < len(diffs) {
		if maxFrames > 0 && len(frames) == maxFrames {
			break
		}

		remaining := diffs[i:]
		n := min(4, len(remaining))

		switch {
		case n == 4 && allFitI8(remaining[:4]):
			cur.setWord(slot, 1, packFour(remaining[:4]))
			lastEmitted += remaining[0] + remaining[1] + remaining[2] + remaining[3]
			i += 4
		case n >= 2 && fitsI16(remaining[0]) && fitsI16(remaining[1]):
			cur.setWord(slot, 2, packTwo(remaining[0], remaining[1]))
			lastEmitted += remaining[0] + remaining[1]
			i += 2
		default:
			cur.setWord(slot, 3, uint32(remaining[0])) //nolint:gosec
			lastEmitted += remaining[0]
			i++
		}

		slot++

		if slot > wordsPerFrame {
			frames = append(frames, cur)
			cur = newFrame()
			slot = 1
		}
	}

	// The first frame always carries X(0)/X(N-1) even if no data atoms were
	// ever packed into it (e.g. a single-sample input); later frames are only
	// emitted if they hold data.
	if slot > 1 || len(frames) == 0 {
		frames = append(frames, cur)
	}

	// w(2) of frame 0 holds the reverse integration constant: the actual last
	// sample emitted, which is samples[len(samples)-1] unless maxFrames cut
	// the stream short.
	frames[0].setWord(2, 0, uint32(lastEmitted)) //nolint:gosec

	out := make([]byte, 0, len(frames)*FrameSize)
	for _, fr := range frames {
		out = fr.appendTo(out)
	}

	return out, nil
}

// frame is the in-memory form of one 64-byte Steim-1 frame: a 32-bit nibble
// word carrying 16 two-bit tags, plus 15 32-bit data words.
type frame struct {
	nibbles uint32
	words   [wordsPerFrame]uint32
}

func newFrame() frame {
	return frame{}
}

// setWord stores word at the given 1-based slot (1..15) and sets its two-bit
// tag in the nibble word. Tag c(i) occupies bits [31-2i : 30-2i] of nibbles.
func (fr *frame) setWord(slot int, tag uint32, word uint32) {
	fr.words[slot-1] = word
	fr.nibbles |= tag << (30 - 2*uint(slot)) //nolint:gosec
}

func (fr frame) appendTo(dst []byte) []byte {
	var head [4]byte
	be.PutUint32(head[:], fr.nibbles)
	dst = append(dst, head[:]...)

	for _, w := range fr.words {
		var b [4]byte
		be.PutUint32(b[:], w)
		dst = append(dst, b[:]...)
	}

	return dst
}

func fitsI8(v int32) bool  { return v >= -128 && v <= 127 }
func fitsI16(v int32) bool { return v >= -32768 && v <= 32767 }

func allFitI8(vs []int32) bool {
	for _, v := range vs {
		if !fitsI8(v) {
			return false
		}
	}

	return true
}

// packFour packs four values known to fit in int8 into one big-endian word.
func packFour(vs []int32) uint32 {
	return uint32(uint8(int8(vs[0])))<<24 | //nolint:gosec
		uint32(uint8(int8(vs[1])))<<16 | //nolint:gosec
		uint32(uint8(int8(vs[2])))<<8 | //nolint:gosec
		uint32(uint8(int8(vs[3]))) //nolint:gosec
}

// packTwo packs two values known to fit in int16 into one big-endian word.
func packTwo(a, b int32) uint32 {
	return uint32(uint16(int16(a)))<<16 | uint32(uint16(int16(b))) //nolint:gosec
}
