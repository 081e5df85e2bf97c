package simulation

import (
	"github.com/rosamundsoh/hotel-checkin-des/frontdesk"
	"github.com/rosamundsoh/hotel-checkin-des/housekeeping"
	"github.com/rosamundsoh/hotel-checkin-des/monitoring"
	"github.com/rosamundsoh/hotel-checkin-des/sim"
)

// reactivationHook re-checks both service loops after every handled event.
// A guest or a room released by one component is picked up by the other at
// the same instant, and work that piled up outside shift hours resumes with
// the first event inside them.
type reactivationHook struct {
	frontDesk    *frontdesk.Comp
	housekeeping *housekeeping.Comp
}

func (h reactivationHook) Func(ctx sim.HookCtx) {
	if ctx.Pos != sim.HookPosAfterEvent {
		return
	}

	h.frontDesk.TryStartService()
	h.housekeeping.TryStartCleaning()
}

// progressHook keeps the simulated-hours progress bar aligned with the
// engine clock.
type progressHook struct {
	engine sim.TimeTeller
	bar    *monitoring.ProgressBar
}

func (h progressHook) Func(ctx sim.HookCtx) {
	if ctx.Pos != sim.HookPosAfterEvent {
		return
	}

	h.bar.SetFinished(uint64(h.engine.CurrentTime()))
}
