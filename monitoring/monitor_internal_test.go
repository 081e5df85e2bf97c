package monitoring

import (
	"encoding/json"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/gorilla/mux"

	"github.com/rosamundsoh/hotel-checkin-des/hotel"
	"github.com/rosamundsoh/hotel-checkin-des/metrics"
	"github.com/rosamundsoh/hotel-checkin-des/sim"
)

type fakeComponent struct {
	*sim.ComponentBase
}

func (c *fakeComponent) Handle(_ sim.Event) error {
	return nil
}

type stubClock struct {
	now sim.VTimeInHours
}

func (c *stubClock) CurrentTime() sim.VTimeInHours {
	return c.now
}

var _ = Describe("Monitor", func() {
	var (
		m      *Monitor
		engine *sim.SerialEngine
		acc    *metrics.Accumulator
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		acc = metrics.MakeBuilder().
			WithTimeTeller(engine).
			Build()

		m = NewMonitor()
		m.RegisterEngine(engine)
		m.RegisterAccumulator(acc)
	})

	It("should list registered components", func() {
		m.RegisterComponent(&fakeComponent{sim.NewComponentBase("FrontDesk")})
		m.RegisterComponent(&fakeComponent{
			sim.NewComponentBase("Housekeeping")})

		w := httptest.NewRecorder()
		m.listComponents(w, httptest.NewRequest("GET", "/api/list_components",
			nil))

		Expect(w.Body.String()).To(Equal(`["FrontDesk","Housekeeping"]`))
	})

	It("should serve the current time", func() {
		w := httptest.NewRecorder()
		m.now(w, httptest.NewRequest("GET", "/api/now", nil))

		Expect(w.Body.String()).To(HavePrefix(`{"now":0.00`))
	})

	It("should pause and continue the engine", func() {
		w := httptest.NewRecorder()
		m.pauseEngine(w, httptest.NewRequest("GET", "/api/pause", nil))
		Expect(w.Code).To(Equal(200))

		w = httptest.NewRecorder()
		m.continueEngine(w, httptest.NewRequest("GET", "/api/continue", nil))
		Expect(w.Code).To(Equal(200))
	})

	It("should serve the report with the run ID", func() {
		m.WithRunID("test-run")

		w := httptest.NewRecorder()
		m.report(w, httptest.NewRequest("GET", "/api/report", nil))

		report := metrics.Report{}
		Expect(json.Unmarshal(w.Body.Bytes(), &report)).To(Succeed())
		Expect(report.RunID).To(Equal("test-run"))
		Expect(report.Results.GuestsMeasured).To(Equal(0))
	})

	It("should serve an empty series as an empty array", func() {
		req := mux.SetURLVars(
			httptest.NewRequest("GET", "/api/series/occupancy", nil),
			map[string]string{"name": "occupancy"})
		w := httptest.NewRecorder()

		m.series(w, req)

		Expect(w.Code).To(Equal(200))
		Expect(w.Body.String()).To(Equal("[]"))
	})

	It("should reject an unknown series name", func() {
		req := mux.SetURLVars(
			httptest.NewRequest("GET", "/api/series/minibar", nil),
			map[string]string{"name": "minibar"})
		w := httptest.NewRecorder()

		m.series(w, req)

		Expect(w.Code).To(Equal(404))
	})

	It("should serve wait percentiles in minutes", func() {
		config := hotel.DefaultConfig()
		config.WarmupDays = 0

		clock := &stubClock{}
		acc = metrics.MakeBuilder().
			WithTimeTeller(clock).
			WithConfig(config).
			Build()
		m.RegisterAccumulator(acc)

		start := sim.VTimeInHours(0.25)
		end := sim.VTimeInHours(0.5)
		checkin := sim.VTimeInHours(1.0)
		acc.RecordCheckin(&hotel.Guest{
			FrontDeskStart: &start,
			FrontDeskEnd:   &end,
			CheckinTime:    &checkin,
		})

		req := mux.SetURLVars(
			httptest.NewRequest("GET", "/api/waits/front_desk", nil),
			map[string]string{"name": "front_desk"})
		w := httptest.NewRecorder()

		m.waits(w, req)

		rsp := waitsRsp{}
		Expect(json.Unmarshal(w.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp.P50).To(BeNumerically("~", 15.0, 1e-9))
		Expect(rsp.P95).To(BeNumerically("~", 15.0, 1e-9))
		Expect(rsp.SamplesMinutes).To(HaveLen(1))
	})

	It("should track progress bars", func() {
		bar := m.CreateProgressBar("arrival generation", 100)
		bar.IncrementFinished(40)
		bar.SetFinished(60)

		w := httptest.NewRecorder()
		m.listProgressBars(w, httptest.NewRequest("GET", "/api/progress", nil))

		var bars []*ProgressBar
		Expect(json.Unmarshal(w.Body.Bytes(), &bars)).To(Succeed())
		Expect(bars).To(HaveLen(1))
		Expect(bars[0].Name).To(Equal("arrival generation"))
		Expect(bars[0].Finished).To(Equal(uint64(60)))

		m.CompleteProgressBar(bar)

		w = httptest.NewRecorder()
		m.listProgressBars(w, httptest.NewRequest("GET", "/api/progress", nil))
		Expect(json.Unmarshal(w.Body.Bytes(), &bars)).To(Succeed())
		Expect(bars).To(BeEmpty())
	})
})
