package recording

import (
	"bytes"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/internal"
	"github.com/oomph-ac/locomotion/locomotion"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/zeebo/xxh3"
)

// Recorder collects one frame per tick of a controller. Two runs fed the same input at the same tick length
// produce the same digest.
type Recorder struct {
	frames []Frame
}

// NewRecorder returns an empty recorder with room for capacity frames.
func NewRecorder(capacity int) *Recorder {
	return &Recorder{frames: make([]Frame, 0, max(capacity, 0))}
}

// Record appends the state passed as a frame.
func (r *Recorder) Record(s locomotion.State) {
	r.frames = append(r.frames, FrameFromState(s))
}

// Frames returns the frames recorded so far. The slice must not be modified.
func (r *Recorder) Frames() []Frame {
	return r.frames
}

// Len ...
func (r *Recorder) Len() int {
	return len(r.frames)
}

// Reset drops every recorded frame.
func (r *Recorder) Reset() {
	r.frames = r.frames[:0]
}

// Encode returns the little-endian encoding of every frame, in order.
func (r *Recorder) Encode() []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	for _, f := range r.frames {
		f.Encode(buf)
	}
	return bytes.Clone(buf.Bytes())
}

// Digest returns the xxh3 hash of the encoded frames.
func (r *Recorder) Digest() uint64 {
	return xxh3.Hash(r.Encode())
}

// Decode parses data produced by Recorder.Encode back into frames.
func Decode(data []byte) ([]Frame, error) {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	buf.Write(data)
	defer internal.BufferPool.Put(buf)

	frames := make([]Frame, 0, len(data)/frameSize)
	for buf.Len() > 0 {
		f, err := DecodeFrame(buf)
		if err != nil {
			return frames, oerror.New("error decoding frame %d: %v", len(frames), err)
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// Summary returns aggregate values of the recording in a fixed order.
func (r *Recorder) Summary() *orderedmap.OrderedMap[string, any] {
	var (
		jumps, slides, grounded int
		maxSpeed, peak          float32
	)
	peak = -math32.MaxFloat32
	for _, f := range r.frames {
		if f.Jumped {
			jumps++
		}
		if f.Sliding {
			slides++
		}
		if f.Grounded {
			grounded++
		}
		maxSpeed = math32.Max(maxSpeed, f.Speed)
		peak = math32.Max(peak, f.Position.Y())
	}

	data := orderedmap.NewOrderedMap[string, any]()
	data.Set("ticks", len(r.frames))
	data.Set("jumps", jumps)
	data.Set("sliding_ticks", slides)
	data.Set("grounded_ticks", grounded)
	data.Set("max_speed", game.Round32(maxSpeed, 3))
	if len(r.frames) > 0 {
		last := r.frames[len(r.frames)-1]
		data.Set("peak_y", game.Round32(peak, 3))
		data.Set("final_pos", fmt.Sprintf("(%.3f, %.3f, %.3f)", last.Position.X(), last.Position.Y(), last.Position.Z()))
	}
	data.Set("digest", fmt.Sprintf("%016x", r.Digest()))
	return data
}

// FormatSummary formats an ordered map as space separated key=value pairs in brackets.
func FormatSummary(data *orderedmap.OrderedMap[string, any]) string {
	if data == nil {
		return "[]"
	}
	s := "["
	for el := data.Front(); el != nil; el = el.Next() {
		if s != "[" {
			s += " "
		}
		s += fmt.Sprintf("%s=%v", el.Key, el.Value)
	}
	return s + "]"
}
