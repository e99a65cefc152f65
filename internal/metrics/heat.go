package metrics

// HeatContent integrates rho*c*u over the domain at the most recent
// observation. CellVolume is dx for a bar and dx*dx for a plate.
type HeatContent struct {
	name       string
	rhoC       float64
	cellVolume float64
	latest     float64
	samples    int
}

func NewHeatContent(density, specificHeat, cellVolume float64) *HeatContent {
	return &HeatContent{
		name:       "heat_content",
		rhoC:       density * specificHeat,
		cellVolume: cellVolume,
	}
}

func (h *HeatContent) Name() string {
	return h.name
}

func (h *HeatContent) Observe(field []float64, t float64) {
	var total float64
	for _, v := range field {
		total += v
	}
	h.latest = h.rhoC * total * h.cellVolume
	h.samples++
}

func (h *HeatContent) Value() float64 {
	return h.latest
}

func (h *HeatContent) Reset() {
	h.latest = 0
	h.samples = 0
}
