package telemetry

// BrakeLockDetector tracks entry/exit of a braking zone (crossing
// brake = 0.3) and counts ABS activations within the zone (spec.md
// §4.6). Front/rear classification is deferred until per-wheel slip
// data is available, so every emission hardcodes IsFrontLock=false,
// IsRearLock=false and the mapping to FrontBrakeLock is unconditional
// on emission rather than on either flag.
type BrakeLockDetector struct {
	ZoneThreshold float64 // default 0.3

	inZone bool
	count  int
}

func NewBrakeLockDetector() *BrakeLockDetector {
	return &BrakeLockDetector{ZoneThreshold: 0.3}
}

func (d *BrakeLockDetector) Reset() {
	d.inZone = false
	d.count = 0
}

func (d *BrakeLockDetector) Detect(session *SessionInfo, prev, sample *Sample) []Annotation {
	if sample.InPit() {
		return nil
	}
	if sample.BrakePct == nil {
		return nil
	}
	nowInZone := *sample.BrakePct >= d.ZoneThreshold
	if nowInZone != d.inZone {
		d.count = 0
		d.inZone = nowInZone
	}
	if !d.inZone {
		return nil
	}
	if sample.AbsActive == nil || !*sample.AbsActive {
		return nil
	}
	d.count++
	return []Annotation{{
		Kind:               AnnFrontBrakeLock,
		CornerPhase:        cornerPhaseOf(sample),
		CornerIndex:        cornerIndexOf(sample),
		Severity:           0.5,
		AbsActivationCount: d.count,
		IsFrontLock:        false,
		IsRearLock:         false,
	}}
}
