package tour

// Machine is the tour state machine. It owns exactly two pieces of
// state, the running flag and the current step index, and guarantees:
//
//   - the index is always within [0, stepCount) while running
//   - completion and skip callbacks fire at most once per activation
//   - every operation is a total function; out-of-range requests are
//     ignored rather than rejected
//
// Machine is not safe for concurrent use. All mutation is expected to
// happen on a single event loop, which is how the Bubble Tea runtime
// delivers messages.
type Machine struct {
	stepCount int
	running   bool
	index     int

	// Transition callbacks, wired by the controller. Any of them may be
	// nil. onStart and onChange receive the new step index.
	onStart    func(index int)
	onStop     func()
	onChange   func(index int)
	onComplete func()
	onSkip     func()
}

// NewMachine creates an idle machine over a fixed number of steps.
func NewMachine(stepCount int) *Machine {
	return &Machine{stepCount: stepCount}
}

// Running reports whether a tour is active.
func (m *Machine) Running() bool { return m.running }

// Index returns the current step index. It is 0 while idle.
func (m *Machine) Index() int { return m.index }

// StepCount returns the number of steps the machine was built over.
func (m *Machine) StepCount() int { return m.stepCount }

// Start activates the tour at step 0. Calling Start on a running tour
// restarts it from the beginning. A machine over zero steps is inert
// and stays idle.
func (m *Machine) Start() {
	if m.stepCount == 0 {
		return
	}
	m.running = true
	m.index = 0
	if m.onStart != nil {
		m.onStart(0)
	}
}

// Stop deactivates the tour and resets the index. It fires neither the
// completion nor the skip callback. Stopping an idle machine is a no-op.
func (m *Machine) Stop() {
	if !m.running {
		return
	}
	m.running = false
	m.index = 0
	if m.onStop != nil {
		m.onStop()
	}
}

// Next advances to the following step. On the last step it completes
// the tour instead: the machine returns to idle and the completion
// callback fires exactly once.
func (m *Machine) Next() {
	if !m.running {
		return
	}
	if m.index < m.stepCount-1 {
		m.index++
		if m.onChange != nil {
			m.onChange(m.index)
		}
		return
	}
	m.running = false
	m.index = 0
	if m.onComplete != nil {
		m.onComplete()
	}
}

// Back moves to the previous step. On the first step it is a no-op.
func (m *Machine) Back() {
	if !m.running || m.index == 0 {
		return
	}
	m.index--
	if m.onChange != nil {
		m.onChange(m.index)
	}
}

// GoTo jumps to step n. Out-of-range indices and the current index are
// ignored.
func (m *Machine) GoTo(n int) {
	if !m.running || n < 0 || n >= m.stepCount || n == m.index {
		return
	}
	m.index = n
	if m.onChange != nil {
		m.onChange(m.index)
	}
}

// Skip ends the tour early. The machine returns to idle and the skip
// callback fires exactly once. The completion callback does not fire.
func (m *Machine) Skip() {
	if !m.running {
		return
	}
	m.running = false
	m.index = 0
	if m.onSkip != nil {
		m.onSkip()
	}
}

// SetRun forces the machine state to match the external run signal.
// A value matching the current state is a no-op, so a held-true signal
// never restarts a running tour from step 0. A true delivered after a
// manual stop starts the tour again: the signal wins over internal
// state.
func (m *Machine) SetRun(run bool) {
	if run == m.running {
		return
	}
	if run {
		m.Start()
		return
	}
	m.Stop()
}
