package sim

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

type hookRecord struct {
	pos  *HookPos
	time VTimeInHours
	item interface{}
}

// recordingHook captures the hook position, the clock reading and the item of
// every invocation.
type recordingHook struct {
	tt      TimeTeller
	records []hookRecord
}

func (h *recordingHook) Func(ctx HookCtx) {
	h.records = append(h.records, hookRecord{
		pos:  ctx.Pos,
		time: h.tt.CurrentTime(),
		item: ctx.Item,
	})
}

var _ = Describe("SerialEngine", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *SerialEngine
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewSerialEngine()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should schedule events", func() {
		handler1 := NewMockHandler(mockCtrl)
		handler2 := NewMockHandler(mockCtrl)
		evt1 := NewMockEvent(mockCtrl)
		evt2 := NewMockEvent(mockCtrl)
		evt3 := NewMockEvent(mockCtrl)
		evt4 := NewMockEvent(mockCtrl)

		evt1.EXPECT().Time().Return(VTimeInHours(4.0)).AnyTimes()
		evt1.EXPECT().Handler().Return(handler1).AnyTimes()
		evt2.EXPECT().Time().Return(VTimeInHours(2.0)).AnyTimes()
		evt2.EXPECT().Handler().Return(handler2).AnyTimes()
		evt3.EXPECT().Time().Return(VTimeInHours(3.0)).AnyTimes()
		evt3.EXPECT().Handler().Return(handler1).AnyTimes()
		evt4.EXPECT().Time().Return(VTimeInHours(5.0)).AnyTimes()
		evt4.EXPECT().Handler().Return(handler1).AnyTimes()
		handleEvt2 := handler2.EXPECT().Handle(evt2).Do(func(e Event) {
			engine.Schedule(evt3)
			engine.Schedule(evt4)
		})
		handleEvt3 := handler1.EXPECT().
			Handle(evt3).Do(func(e Event) {}).After(handleEvt2)
		handleEvt1 := handler1.EXPECT().
			Handle(evt1).Do(func(e Event) {}).After(handleEvt3)
		handler1.EXPECT().
			Handle(evt4).Do(func(e Event) {}).After(handleEvt1)

		engine.Schedule(evt1)
		engine.Schedule(evt2)

		_ = engine.Run()
	})

	It("should handle same-time events in scheduling order", func() {
		handler := NewMockHandler(mockCtrl)
		evt1 := NewMockEvent(mockCtrl)
		evt2 := NewMockEvent(mockCtrl)
		evt3 := NewMockEvent(mockCtrl)

		evt1.EXPECT().Time().Return(VTimeInHours(2.0)).AnyTimes()
		evt1.EXPECT().Handler().Return(handler).AnyTimes()
		evt2.EXPECT().Time().Return(VTimeInHours(2.0)).AnyTimes()
		evt2.EXPECT().Handler().Return(handler).AnyTimes()
		evt3.EXPECT().Time().Return(VTimeInHours(2.0)).AnyTimes()
		evt3.EXPECT().Handler().Return(handler).AnyTimes()

		handleEvt1 := handler.EXPECT().Handle(evt1)
		handleEvt2 := handler.EXPECT().Handle(evt2).After(handleEvt1)
		handler.EXPECT().Handle(evt3).After(handleEvt2)

		engine.Schedule(evt1)
		engine.Schedule(evt2)
		engine.Schedule(evt3)

		_ = engine.Run()
	})

	It("should stop at the first event past the horizon", func() {
		handler := NewMockHandler(mockCtrl)
		evt1 := NewMockEvent(mockCtrl)
		evt2 := NewMockEvent(mockCtrl)
		evt3 := NewMockEvent(mockCtrl)

		evt1.EXPECT().Time().Return(VTimeInHours(9.0)).AnyTimes()
		evt1.EXPECT().Handler().Return(handler).AnyTimes()
		evt2.EXPECT().Time().Return(VTimeInHours(10.0)).AnyTimes()
		evt2.EXPECT().Handler().Return(handler).AnyTimes()
		evt3.EXPECT().Time().Return(VTimeInHours(11.0)).AnyTimes()
		evt3.EXPECT().Handler().Return(handler).AnyTimes()

		handler.EXPECT().Handle(evt1)
		handler.EXPECT().Handle(evt2)

		engine.SetHorizon(10.0)
		engine.Schedule(evt1)
		engine.Schedule(evt2)
		engine.Schedule(evt3)

		Expect(engine.Run()).To(Succeed())
	})

	It("should drop events scheduled beyond the slack window", func() {
		evt1 := NewMockEvent(mockCtrl)
		evt2 := NewMockEvent(mockCtrl)

		evt1.EXPECT().Time().Return(VTimeInHours(130.5)).AnyTimes()
		evt2.EXPECT().Time().Return(VTimeInHours(130.0)).AnyTimes()

		engine.SetHorizon(10.0)
		engine.Schedule(evt1)
		Expect(engine.queue.Len()).To(Equal(0))

		engine.Schedule(evt2)
		Expect(engine.queue.Len()).To(Equal(1))
	})

	It("should abort the run when a handler fails", func() {
		handler := NewMockHandler(mockCtrl)
		evt1 := NewMockEvent(mockCtrl)
		evt2 := NewMockEvent(mockCtrl)

		evt1.EXPECT().Time().Return(VTimeInHours(1.0)).AnyTimes()
		evt1.EXPECT().Handler().Return(handler).AnyTimes()
		evt2.EXPECT().Time().Return(VTimeInHours(2.0)).AnyTimes()
		evt2.EXPECT().Handler().Return(handler).AnyTimes()

		handler.EXPECT().Handle(evt1).Return(errors.New("no such room"))

		engine.Schedule(evt1)
		engine.Schedule(evt2)

		err := engine.Run()
		Expect(err).To(MatchError("no such room"))
		Expect(engine.queue.Len()).To(Equal(1))
	})

	It("should read the pre-advance time in the before-advance hook", func() {
		handler := NewMockHandler(mockCtrl)
		evt := NewMockEvent(mockCtrl)

		evt.EXPECT().Time().Return(VTimeInHours(3.0)).AnyTimes()
		evt.EXPECT().Handler().Return(handler).AnyTimes()
		handler.EXPECT().Handle(evt)

		hook := &recordingHook{tt: engine}
		engine.AcceptHook(hook)

		engine.Schedule(evt)
		Expect(engine.Run()).To(Succeed())

		Expect(hook.records).To(HaveLen(3))
		Expect(hook.records[0].pos).To(BeIdenticalTo(HookPosBeforeAdvance))
		Expect(hook.records[0].time).To(Equal(VTimeInHours(0.0)))
		Expect(hook.records[0].item).To(BeIdenticalTo(evt))
		Expect(hook.records[1].pos).To(BeIdenticalTo(HookPosBeforeEvent))
		Expect(hook.records[1].time).To(Equal(VTimeInHours(3.0)))
		Expect(hook.records[2].pos).To(BeIdenticalTo(HookPosAfterEvent))
		Expect(hook.records[2].time).To(Equal(VTimeInHours(3.0)))
	})

	It("should panic when scheduling into the past", func() {
		evt := NewMockEvent(mockCtrl)
		evt.EXPECT().Time().Return(VTimeInHours(3.0)).AnyTimes()

		engine.writeNow(5.0)

		Expect(func() { engine.Schedule(evt) }).To(Panic())
	})
})
