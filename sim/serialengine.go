package sim

import (
	"log"
	"reflect"
	"sync"
)

// horizonSlack is how far beyond the horizon an event may still be scheduled.
// Events further out than that are dropped at scheduling time without ever
// entering the queue.
const horizonSlack = VTimeInHours(5 * 24)

// A SerialEngine is an Engine that always run events one after another.
type SerialEngine struct {
	HookableBase

	timeLock sync.RWMutex
	time     VTimeInHours
	queue    EventQueue

	hasHorizon bool
	horizon    VTimeInHours

	isPaused     bool
	isPausedLock sync.Mutex
	pauseLock    sync.Mutex

	singleRunLock sync.Mutex

	simulationEndHandlers []SimulationEndHandler
}

// NewSerialEngine creates a SerialEngine
func NewSerialEngine() *SerialEngine {
	e := new(SerialEngine)

	e.queue = NewEventQueue()
	//e.queue = NewInsertionQueue()

	return e
}

// SetHorizon limits the run to events at or before t. The first event popped
// after t is discarded and ends the run. Events scheduled more than
// horizonSlack beyond t are silently dropped.
func (e *SerialEngine) SetHorizon(t VTimeInHours) {
	e.hasHorizon = true
	e.horizon = t
}

// Schedule register an event to be happen in the future
func (e *SerialEngine) Schedule(evt Event) {
	now := e.readNow()
	if evt.Time() < now {
		log.Panic("scheduling an event earlier than current time")
	}

	if e.hasHorizon && evt.Time() > e.horizon+horizonSlack {
		return
	}

	e.queue.Push(evt)
}

func (e *SerialEngine) readNow() VTimeInHours {
	e.timeLock.RLock()
	t := e.time
	e.timeLock.RUnlock()
	return t
}

func (e *SerialEngine) writeNow(t VTimeInHours) {
	e.timeLock.Lock()
	e.time = t
	e.timeLock.Unlock()
}

// Run processes all the events scheduled in the SerialEngine. It returns the
// first error returned by an event handler, leaving the rest of the queue
// unprocessed.
func (e *SerialEngine) Run() error {
	e.singleRunLock.Lock()
	defer e.singleRunLock.Unlock()

	for {
		if e.queue.Len() == 0 {
			return nil
		}

		e.pauseLock.Lock()

		evt := e.queue.Pop()
		if e.hasHorizon && evt.Time() > e.horizon {
			e.pauseLock.Unlock()
			return nil
		}

		now := e.readNow()
		if evt.Time() < now {
			log.Panicf(
				"cannot run event in the past, evt %s @ %.10f, now %.10f",
				reflect.TypeOf(evt), evt.Time(), now,
			)
		}

		hookCtx := HookCtx{
			Domain: e,
			Pos:    HookPosBeforeAdvance,
			Item:   evt,
		}
		e.InvokeHook(hookCtx)

		e.writeNow(evt.Time())

		hookCtx.Pos = HookPosBeforeEvent
		e.InvokeHook(hookCtx)

		handler := evt.Handler()
		if err := handler.Handle(evt); err != nil {
			e.pauseLock.Unlock()
			return err
		}

		hookCtx.Pos = HookPosAfterEvent
		e.InvokeHook(hookCtx)

		e.pauseLock.Unlock()
	}
}

// Pause prevents the SerialEngine to trigger more events.
func (e *SerialEngine) Pause() {
	e.isPausedLock.Lock()
	defer e.isPausedLock.Unlock()

	if e.isPaused {
		return
	}

	e.pauseLock.Lock()
	e.isPaused = true
}

// Continue allows the SerialEngine to trigger more events.
func (e *SerialEngine) Continue() {
	e.isPausedLock.Lock()
	defer e.isPausedLock.Unlock()

	if !e.isPaused {
		return
	}

	e.pauseLock.Unlock()
	e.isPaused = false
}

// CurrentTime returns the current time at which the engine is at.
// Specifically, the run time of the current event.
func (e *SerialEngine) CurrentTime() VTimeInHours {
	return e.readNow()
}

// RegisterSimulationEndHandler registers a handler to be called after the
// simulation ends.
func (e *SerialEngine) RegisterSimulationEndHandler(
	handler SimulationEndHandler,
) {
	e.simulationEndHandlers = append(e.simulationEndHandlers, handler)
}

// Finished should be called after the simulation ends. This function
// calls all the registered SimulationEndHandler.
func (e *SerialEngine) Finished() {
	now := e.readNow()
	for _, h := range e.simulationEndHandlers {
		h.Handle(now)
	}
}
