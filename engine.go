// Copyright 2026 The Kanata Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kanata

import "github.com/sirupsen/logrus"

// OutputSink is the keystroke sink a ChordEngine drives. It has no
// batching guarantee: the engine calls Press/Release in the exact
// order they must appear on the wire, synchronously, from whatever
// thread owns the ChordEngine.
type OutputSink interface {
	Press(KeyCode)
	Release(KeyCode)
}

// SmartSpaceMode controls whether the engine auto-inserts a trailing
// space after an activation and auto-eats it before punctuation.
type SmartSpaceMode uint8

const (
	SmartSpaceDisabled SmartSpaceMode = iota
	SmartSpaceAddSpaceOnly
	SmartSpaceFull
)

// EngineConfig holds the tunables a ChordEngine needs at construction;
// it is the runtime projection of a parsed zippy configuration (see
// zippy.ZippyConfig), kept free of any dependency on the zippy or
// sexpr packages so the core engine has no parsing concerns.
type EngineConfig struct {
	IdleReactivateTicks     uint16
	FirstPressDeadlineTicks uint16
	SmartSpace              SmartSpaceMode
	SmartSpacePunctuation   map[KeyCode]bool
}

// DefaultEngineConfig returns the zero-configuration tunables: 500-tick
// deadlines and smart-space disabled.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		IdleReactivateTicks:     500,
		FirstPressDeadlineTicks: 500,
		SmartSpace:              SmartSpaceDisabled,
		SmartSpacePunctuation:   map[KeyCode]bool{},
	}
}

// EngineState names which of the four recognition modes the
// ChordEngine is currently in.
type EngineState uint8

const (
	// Idle: activeMap is the root map and no keys are mid-chord.
	Idle EngineState = iota
	// Building: the held key set is a Prefix of some stored chord but
	// not yet an exact match.
	Building
	// ActiveFollowup: the last activation had a nested dictionary;
	// it is consulted before falling back to the root map.
	ActiveFollowup
	// Disabled: chord recognition is suppressed; keys pass through
	// until a word-break key is seen or the idle deadline elapses.
	Disabled
)

// String renders a human-readable name, used in debug logging.
func (s EngineState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Building:
		return "Building"
	case ActiveFollowup:
		return "ActiveFollowup"
	case Disabled:
		return "Disabled"
	default:
		return "Unknown"
	}
}

// ChordEngine is the single-threaded cooperative state machine that
// turns a stream of press/release/tick events into OutputSink calls.
// It is not safe for concurrent use; a platform adapter that needs to
// hand events off from another thread should use an EventQueue.
type ChordEngine struct {
	root   *ChordMap
	config EngineConfig
	sink   OutputSink
	log    logrus.FieldLogger

	state     EngineState
	activeMap *ChordMap // nil means root

	held     *SortedKeySet
	buffered []KeyCode // keys pass-through-emitted as plain typing this run

	prevDisplayLen int // erase budget carried from the last chained activation

	deadlineArmed bool
	deadlineTick  uint64
	lastActivity  uint64

	trailingSpacePending bool

	userShiftDown bool
	userAltGrDown bool

	engineShiftDown bool // true while the engine itself holds synthetic shift
	engineAltGrDown bool
}

// NewChordEngine constructs an engine over an immutable root ChordMap,
// sending output to sink. A nil logger falls back to a discard logger.
func NewChordEngine(root *ChordMap, config EngineConfig, sink OutputSink, log logrus.FieldLogger) *ChordEngine {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(discardWriter{})
		log = discard
	}
	if config.SmartSpacePunctuation == nil {
		config.SmartSpacePunctuation = map[KeyCode]bool{}
	}
	return &ChordEngine{
		root:   root,
		config: config,
		sink:   sink,
		log:    log,
		held:   NewSortedKeySet(),
	}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func (e *ChordEngine) setState(s EngineState) {
	if e.state != s {
		e.log.WithFields(logrus.Fields{"from": e.state.String(), "to": s.String()}).Debug("kanata: state transition")
	}
	e.state = s
}

func (e *ChordEngine) isWordBreak(k KeyCode) bool {
	return k == KeySpace || e.config.SmartSpacePunctuation[k]
}

// Press handles a physical key-down event at the given driver tick.
func (e *ChordEngine) Press(k KeyCode, tick uint64) {
	e.lastActivity = tick
	e.trackModifiers(k, true)
	e.held.Insert(k)

	if e.state == Disabled {
		e.sink.Press(k)
		if e.isWordBreak(k) {
			e.reenableAtWordBreak()
		}
		return
	}

	if e.trailingSpacePending && e.isWordBreak(k) && (e.state == Idle || e.state == ActiveFollowup) {
		e.trailingSpacePending = false
		e.emitBackspace()
		e.sink.Press(k)
		// release is handled normally by Release()
		return
	}

	e.queryAndAdvance(k, tick)
}

// queryAndAdvance re-queries the currently held key set against the
// active map (falling back to root when a follow-up map misses) and
// advances the state machine accordingly.
func (e *ChordEngine) queryAndAdvance(pressed KeyCode, tick uint64) {
	keys := e.held.Keys()

	mapUsed := e.activeMap
	if mapUsed == nil {
		mapUsed = e.root
	}
	result := mapUsed.QuerySorted(keys)

	if result.Kind == Miss && mapUsed != e.root {
		rootResult := e.root.QuerySorted(keys)
		if rootResult.Kind != Miss {
			mapUsed = e.root
			result = rootResult
		}
	}

	switch result.Kind {
	case Hit:
		e.activate(result.Node, pressed)
	case Prefix:
		e.activeMap = mapUsed
		e.buffered = append(e.buffered, pressed)
		e.sink.Press(pressed)
		if !e.deadlineArmed {
			e.deadlineArmed = true
			e.deadlineTick = tick + uint64(e.config.FirstPressDeadlineTicks)
		}
		e.setState(Building)
	case Miss:
		e.buffered = e.buffered[:0]
		e.prevDisplayLen = 0
		e.deadlineArmed = false
		e.sink.Press(pressed)
		e.setState(Disabled)
	}
}

// Release handles a physical key-up event.
func (e *ChordEngine) Release(k KeyCode, tick uint64) {
	e.lastActivity = tick
	e.trackModifiers(k, false)
	e.held.Remove(k)

	if e.state == Disabled {
		e.sink.Release(k)
		return
	}
	e.sink.Release(k)

	if e.state == Building && e.held.Len() == 0 {
		// A Hit always moves the state out of Building via activate, so
		// reaching here with an empty held set means the chord attempt
		// was abandoned without completing.
		e.buffered = e.buffered[:0]
		e.deadlineArmed = false
		e.setState(Idle)
	}
}

// Tick advances virtual time. It enforces the first-press deadline and
// the idle-reactivate timeout.
func (e *ChordEngine) Tick(tick uint64) {
	if e.state == Building && e.deadlineArmed && tick >= e.deadlineTick {
		e.buffered = e.buffered[:0]
		e.deadlineArmed = false
		e.setState(Disabled)
	}
	if e.state == Disabled && tick-e.lastActivity >= uint64(e.config.IdleReactivateTicks) {
		e.resetToIdle()
	}
}

func (e *ChordEngine) reenableAtWordBreak() {
	e.resetToIdle()
}

func (e *ChordEngine) resetToIdle() {
	e.activeMap = nil
	e.buffered = e.buffered[:0]
	e.prevDisplayLen = 0
	e.deadlineArmed = false
	e.trailingSpacePending = false
	e.setState(Idle)
}

func (e *ChordEngine) trackModifiers(k KeyCode, down bool) {
	switch k {
	case KeyLeftShift, KeyRightShift:
		e.userShiftDown = down
	case KeyRightAlt:
		e.userAltGrDown = down
	}
}

func (e *ChordEngine) emitBackspace() {
	e.sink.Press(KeyBackspace)
	e.sink.Release(KeyBackspace)
}

// activate runs the activation algorithm for a Hit on node, triggered
// by pressing triggerKey. A node with no output of its own is a pure
// intermediate step of a multi-step chord (e.g. the first step of
// " w  a"): nothing is erased or emitted yet, and triggerKey joins the
// buffered pass-through keys so the eventual real activation erases
// everything typed since the chord began. A node with output runs the
// full activation algorithm: erase the buffered keys plus the display
// length recorded by the previous activation that had output, emit
// node's output wrapped in the right modifiers, and arm smart-space
// bookkeeping.
func (e *ChordEngine) activate(node *ChordNode, triggerKey KeyCode) {
	if len(node.Output) == 0 && node.Followups != nil {
		e.buffered = append(e.buffered, triggerKey)
		e.sink.Press(triggerKey)
		e.activeMap = node.Followups
		e.deadlineArmed = false
		e.setState(ActiveFollowup)
		return
	}

	eraseCount := len(e.buffered) + e.prevDisplayLen
	for i := 0; i < eraseCount; i++ {
		e.emitBackspace()
	}
	e.buffered = e.buffered[:0]

	e.emitOutputs(node.Output)

	trailing := false
	if e.config.SmartSpace != SmartSpaceDisabled && len(node.Output) > 0 && !node.Output[len(node.Output)-1].IsBackspace() {
		e.sink.Press(KeySpace)
		e.sink.Release(KeySpace)
		trailing = true
	}
	e.trailingSpacePending = trailing

	e.prevDisplayLen = DisplayLen(node.Output)
	e.deadlineArmed = false

	if node.Followups != nil {
		e.activeMap = node.Followups
		e.setState(ActiveFollowup)
	} else {
		e.activeMap = nil
		e.setState(Idle)
	}
}

// emitOutputs emits each Output in order, wrapping with the modifier
// keys its Kind requires and skipping synthetic Shift/AltGr presses
// the user is already physically holding.
func (e *ChordEngine) emitOutputs(outputs []Output) {
	for _, o := range outputs {
		if o.IsBackspace() {
			e.emitBackspace()
			continue
		}
		switch o.Kind {
		case Lowercase:
			e.sink.Press(o.Key)
			e.sink.Release(o.Key)
		case Uppercase:
			e.pressShift()
			e.sink.Press(o.Key)
			e.sink.Release(o.Key)
			e.releaseShift()
		case AltGr:
			e.pressAltGr()
			e.sink.Press(o.Key)
			e.sink.Release(o.Key)
			e.releaseAltGr()
		case ShiftAltGr:
			e.pressShift()
			e.pressAltGr()
			e.sink.Press(o.Key)
			e.sink.Release(o.Key)
			e.releaseAltGr()
			e.releaseShift()
		}
	}
}

func (e *ChordEngine) pressShift() {
	if !e.userShiftDown {
		e.sink.Press(KeyLeftShift)
		e.engineShiftDown = true
	}
}

func (e *ChordEngine) releaseShift() {
	if e.engineShiftDown {
		e.sink.Release(KeyLeftShift)
		e.engineShiftDown = false
	}
}

func (e *ChordEngine) pressAltGr() {
	if !e.userAltGrDown {
		e.sink.Press(KeyRightAlt)
		e.engineAltGrDown = true
	}
}

func (e *ChordEngine) releaseAltGr() {
	if e.engineAltGrDown {
		e.sink.Release(KeyRightAlt)
		e.engineAltGrDown = false
	}
}

// State reports the engine's current recognition mode, for tests and
// diagnostics.
func (e *ChordEngine) State() EngineState {
	return e.state
}
