package metrics

type MeanTemperature struct {
	name    string
	sum     float64
	samples int
}

func NewMeanTemperature() *MeanTemperature {
	return &MeanTemperature{
		name: "mean_temperature",
	}
}

func (m *MeanTemperature) Name() string {
	return m.name
}

func (m *MeanTemperature) Observe(field []float64, t float64) {
	if len(field) == 0 {
		return
	}
	var total float64
	for _, v := range field {
		total += v
	}
	m.sum += total / float64(len(field))
	m.samples++
}

func (m *MeanTemperature) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanTemperature) Reset() {
	m.sum = 0
	m.samples = 0
}
