// Package gesture turns a stream of normalized body landmarks into discrete,
// single-fire directional events.
package gesture

import "math"

// Landmark indices used by the classifier, following the 33-point pose model numbering.
const (
	Nose       = 0
	LeftWrist  = 15
	RightWrist = 16

	// MinLandmarks is the smallest sample the classifier accepts.
	MinLandmarks = RightWrist + 1
)

// Landmark is a body keypoint in normalized image coordinates.
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (l Landmark) valid() bool {
	return !math.IsNaN(l.X) && !math.IsNaN(l.Y) && !math.IsInf(l.X, 0) && !math.IsInf(l.Y, 0)
}

// Sample holds every landmark of one detected pose, indexed by landmark number.
type Sample []Landmark

// Frame is the sensor output for one camera frame. No poses means no update.
type Frame struct {
	Poses []Sample `json:"poses"`
}
