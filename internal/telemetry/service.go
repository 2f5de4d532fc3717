package telemetry

import (
	"math/rand"
	"sync"
	"time"
)

// maxReadings bounds the retained history to the last 20 data points.
const maxReadings = 20

// Reading is one simulated sensor sample.
type Reading struct {
	Time        string  `json:"time"`
	Pressure    float64 `json:"pressure"`
	Temperature float64 `json:"temperature"`
	FlowRate    float64 `json:"flowRate"`
}

// Snapshot is the current live-metrics view served to pollers.
type Snapshot struct {
	GaugeValue       float64   `json:"gaugeValue"`
	TemperatureValue float64   `json:"temperatureValue"`
	Readings         []Reading `json:"readings"`
}

// TelemetryService simulates the field's real-time sensor feed: a ticker
// jitters the pressure gauge and temperature and appends a reading per tick.
// There is no streaming transport; clients poll Snapshot over HTTP.
type TelemetryService struct {
	Interval time.Duration

	mu       sync.Mutex
	rng      *rand.Rand
	gauge    float64
	temp     float64
	readings []Reading

	stop chan struct{}
	once sync.Once
}

func NewTelemetryService(interval time.Duration) *TelemetryService {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &TelemetryService{
		Interval: interval,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		gauge:    2350,
		temp:     183,
		stop:     make(chan struct{}),
	}
}

// Start launches the background ticker. Call Stop to end it.
func (ts *TelemetryService) Start() {
	go func() {
		ticker := time.NewTicker(ts.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				ts.tick(time.Now())
			case <-ts.stop:
				return
			}
		}
	}()
}

// Stop ends the ticker goroutine. Safe to call more than once.
func (ts *TelemetryService) Stop() {
	ts.once.Do(func() { close(ts.stop) })
}

func (ts *TelemetryService) tick(now time.Time) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.readings = append(ts.readings, Reading{
		Time:        now.Format("15:04:05"),
		Pressure:    2300 + ts.rng.Float64()*200,
		Temperature: 180 + ts.rng.Float64()*15,
		FlowRate:    800 + ts.rng.Float64()*300,
	})
	if len(ts.readings) > maxReadings {
		ts.readings = ts.readings[len(ts.readings)-maxReadings:]
	}

	ts.gauge = 2300 + ts.rng.Float64()*200
	ts.temp = 180 + ts.rng.Float64()*15
}

// Snapshot returns the current gauge values and retained readings.
func (ts *TelemetryService) Snapshot() Snapshot {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	readings := make([]Reading, len(ts.readings))
	copy(readings, ts.readings)
	return Snapshot{
		GaugeValue:       ts.gauge,
		TemperatureValue: ts.temp,
		Readings:         readings,
	}
}
