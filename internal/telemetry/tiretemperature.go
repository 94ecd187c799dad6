package telemetry

// TireTemperatureDetector downsamples to 1Hz and compares a rolling
// history-window mean of all-four-tire surface temperature against an
// optimal band (spec.md §4.6).
type TireTemperatureDetector struct {
	ProducerRateHz  int     // default 60; keep every Nth sample
	HistoryWindowS  int     // default 60 seconds of 1Hz samples
	OptimalMinC     float64 // default 80.0
	OptimalMaxC     float64 // default 95.0
	MinHistory      int     // default 10

	tick    int
	history []float64 // recent 1Hz means, trimmed to HistoryWindowS entries
}

func NewTireTemperatureDetector() *TireTemperatureDetector {
	return &TireTemperatureDetector{
		ProducerRateHz: 60,
		HistoryWindowS: 60,
		OptimalMinC:    80.0,
		OptimalMaxC:    95.0,
		MinHistory:     10,
	}
}

func (d *TireTemperatureDetector) Reset() {
	d.tick = 0
	d.history = nil
}

func (d *TireTemperatureDetector) Detect(session *SessionInfo, prev, sample *Sample) []Annotation {
	if sample.InPit() {
		return nil
	}
	tires := sample.Tires()
	if tires == nil {
		return nil
	}
	d.tick++
	rate := d.ProducerRateHz
	if rate <= 0 {
		rate = 1
	}
	if d.tick%rate != 0 {
		return nil
	}

	mean := (tires.FrontLeft + tires.FrontRight + tires.RearLeft + tires.RearRight) / 4.0
	d.history = append(d.history, mean)
	if len(d.history) > d.HistoryWindowS {
		d.history = d.history[len(d.history)-d.HistoryWindowS:]
	}
	if len(d.history) < d.MinHistory {
		return nil
	}

	var sum float64
	for _, v := range d.history {
		sum += v
	}
	historyMean := sum / float64(len(d.history))

	switch {
	case historyMean > d.OptimalMaxC:
		return []Annotation{{
			Kind:             AnnTireOverheating,
			CornerPhase:      cornerPhaseOf(sample),
			CornerIndex:      cornerIndexOf(sample),
			Severity:         0.5,
			MeanSurfaceTempC: historyMean,
		}}
	case historyMean < d.OptimalMinC:
		return []Annotation{{
			Kind:             AnnTireCold,
			CornerPhase:      cornerPhaseOf(sample),
			CornerIndex:      cornerIndexOf(sample),
			Severity:         0.5,
			MeanSurfaceTempC: historyMean,
		}}
	}
	return nil
}
