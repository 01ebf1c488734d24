package easel

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an interaction script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for an interaction script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected pointer events across frames for automated
// interaction testing and scripted demos. Attach to a Scene via SetScript.
//
// Supported actions: "click" (x, y), "drag" (fromX, fromY, toX, toY,
// frames), and "wait" (frames).
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON interaction script and returns a Script ready to
// be attached to a Scene via SetScript.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse interaction script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse interaction script: no steps")
	}
	return &Script{steps: file.Steps}, nil
}

// SetScript attaches an interaction script to the scene. The script's step
// method is called from Scene.Update before input processing each frame.
func (s *Scene) SetScript(script *Script) {
	s.script = script
}

// Done reports whether all steps in the script have been executed.
func (sc *Script) Done() bool {
	return sc.done
}

// step advances the script by one frame. Called from Scene.Update.
func (sc *Script) step(s *Scene) {
	if sc.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if sc.waitCount > 0 {
		sc.waitCount--
		return
	}
	if sc.cursor >= len(sc.steps) {
		sc.done = true
		return
	}

	st := sc.steps[sc.cursor]
	sc.cursor++

	switch st.Action {
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "wait":
		if st.Frames > 0 {
			sc.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if sc.cursor >= len(sc.steps) && sc.waitCount == 0 && len(s.injectQueue) == 0 {
		sc.done = true
	}
}
