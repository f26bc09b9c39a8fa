package replay

import "github.com/younwookim/motionctl/internal/domain/motion"

// Version is the current replay format version
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int     `json:"f"`             // Frame number
	MX  float64 `json:"mx,omitempty"`  // Smoothed axis X
	MY  float64 `json:"my,omitempty"`  // Smoothed axis Y
	RX  float64 `json:"rx,omitempty"`  // Raw axis X
	RY  float64 `json:"ry,omitempty"`  // Raw axis Y
	J   bool    `json:"j,omitempty"`   // Jump held
	JP  bool    `json:"jp,omitempty"`  // JumpPressed
	Dsh bool    `json:"dsh,omitempty"` // DashPressed
	Atk bool    `json:"atk,omitempty"` // AttackPressed
	Rsp bool    `json:"rsp,omitempty"` // Respawn instead of stepping
}

// NewFrameInput captures one tick of controller input
func NewFrameInput(frame int, in motion.InputState) FrameInput {
	return FrameInput{
		F:   frame,
		MX:  in.Move.X,
		MY:  in.Move.Y,
		RX:  in.RawMove.X,
		RY:  in.RawMove.Y,
		J:   in.JumpHeld,
		JP:  in.JumpPressed,
		Dsh: in.DashPressed,
		Atk: in.AttackPressed,
	}
}

// NewRespawnFrame records a manual respawn. The frame carries no input and
// does not advance the simulation.
func NewRespawnFrame(frame int) FrameInput {
	return FrameInput{F: frame, Rsp: true}
}

// State converts the frame back into controller input
func (f FrameInput) State() motion.InputState {
	return motion.InputState{
		Move:          motion.Vec2{X: f.MX, Y: f.MY},
		RawMove:       motion.Vec2{X: f.RX, Y: f.RY},
		JumpHeld:      f.J,
		JumpPressed:   f.JP,
		DashPressed:   f.Dsh,
		AttackPressed: f.Atk,
	}
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	Backend   string       `json:"backend"`
	TickRate  int          `json:"tickRate"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// DT returns the fixed tick length of the recording
func (d ReplayData) DT() float64 {
	if d.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(d.TickRate)
}
