package recording

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/locomotion"
)

const (
	flagGrounded = 1 << iota
	flagProbeGrounded
	flagJumped
	flagSliding
	flagBackpedalling
)

// frameSize is the length of one encoded frame: the tick, three vectors, a quaternion, two scalars and
// the flag byte.
const frameSize = 8 + 3*12 + 16 + 2*4 + 1

// Frame is the state of a controlled body at the end of one tick.
type Frame struct {
	Tick        uint64
	Position    mgl32.Vec3
	Velocity    mgl32.Vec3
	Normal      mgl32.Vec3
	Orientation mgl32.Quat

	Speed            float32
	VerticalVelocity float32

	Grounded      bool
	ProbeGrounded bool
	Jumped        bool
	Sliding       bool
	Backpedalling bool
}

// FrameFromState ...
func FrameFromState(s locomotion.State) Frame {
	return Frame{
		Tick:             s.Tick,
		Position:         s.Position,
		Velocity:         s.Velocity,
		Normal:           s.GroundNormal,
		Orientation:      s.Orientation,
		Speed:            s.Speed,
		VerticalVelocity: s.VerticalVelocity,
		Grounded:         s.Grounded,
		ProbeGrounded:    s.ProbeGrounded,
		Jumped:           s.Jumped,
		Sliding:          s.Sliding,
		Backpedalling:    s.Backpedalling,
	}
}

// Encode writes the frame to buf in little-endian order.
func (f Frame) Encode(buf *bytes.Buffer) {
	binary.Write(buf, binary.LittleEndian, f.Tick)
	binary.Write(buf, binary.LittleEndian, f.Position)
	binary.Write(buf, binary.LittleEndian, f.Velocity)
	binary.Write(buf, binary.LittleEndian, f.Normal)
	binary.Write(buf, binary.LittleEndian, f.Orientation.W)
	binary.Write(buf, binary.LittleEndian, f.Orientation.V)
	binary.Write(buf, binary.LittleEndian, f.Speed)
	binary.Write(buf, binary.LittleEndian, f.VerticalVelocity)
	buf.WriteByte(f.flags())
}

func (f Frame) flags() byte {
	var b byte
	if f.Grounded {
		b |= flagGrounded
	}
	if f.ProbeGrounded {
		b |= flagProbeGrounded
	}
	if f.Jumped {
		b |= flagJumped
	}
	if f.Sliding {
		b |= flagSliding
	}
	if f.Backpedalling {
		b |= flagBackpedalling
	}
	return b
}

// DecodeFrame reads a frame written by Frame.Encode from buf.
func DecodeFrame(buf *bytes.Buffer) (Frame, error) {
	if buf.Len() < frameSize {
		return Frame{}, fmt.Errorf("short frame: %d bytes left, need %d", buf.Len(), frameSize)
	}
	var f Frame
	binary.Read(buf, binary.LittleEndian, &f.Tick)
	binary.Read(buf, binary.LittleEndian, &f.Position)
	binary.Read(buf, binary.LittleEndian, &f.Velocity)
	binary.Read(buf, binary.LittleEndian, &f.Normal)
	binary.Read(buf, binary.LittleEndian, &f.Orientation.W)
	binary.Read(buf, binary.LittleEndian, &f.Orientation.V)
	binary.Read(buf, binary.LittleEndian, &f.Speed)
	binary.Read(buf, binary.LittleEndian, &f.VerticalVelocity)

	b, _ := buf.ReadByte()
	f.Grounded = b&flagGrounded != 0
	f.ProbeGrounded = b&flagProbeGrounded != 0
	f.Jumped = b&flagJumped != 0
	f.Sliding = b&flagSliding != 0
	f.Backpedalling = b&flagBackpedalling != 0
	return f, nil
}
