package navigation

// DefaultMilestones are the completion percentages announced with an audio cue.
var DefaultMilestones = []int{25, 50, 75}

// Milestones reports each completion threshold at most once per run.
type Milestones struct {
	thresholds []int
	fired      map[int]bool
}

// NewMilestones creates a tracker for the given thresholds, DefaultMilestones when empty.
func NewMilestones(thresholds ...int) *Milestones {
	if len(thresholds) == 0 {
		thresholds = DefaultMilestones
	}
	return &Milestones{
		thresholds: append([]int(nil), thresholds...),
		fired:      make(map[int]bool),
	}
}

// Observe returns the thresholds crossed for the first time by percent.
func (m *Milestones) Observe(percent int) []int {
	var crossed []int
	for _, t := range m.thresholds {
		if percent >= t && !m.fired[t] {
			m.fired[t] = true
			crossed = append(crossed, t)
		}
	}
	return crossed
}

// Reset rearms every threshold for a new run.
func (m *Milestones) Reset() {
	clear(m.fired)
}
