package metrics

type MaxTemperature struct {
	name    string
	max     float64
	samples int
}

func NewMaxTemperature() *MaxTemperature {
	return &MaxTemperature{
		name: "max_temperature",
	}
}

func (m *MaxTemperature) Name() string {
	return m.name
}

func (m *MaxTemperature) Observe(field []float64, t float64) {
	for _, v := range field {
		if m.samples == 0 || v > m.max {
			m.max = v
		}
		m.samples++
	}
}

func (m *MaxTemperature) Value() float64 {
	return m.max
}

func (m *MaxTemperature) Reset() {
	m.max = 0
	m.samples = 0
}
