package chroma

// Metrics accumulates upsampling statistics. It is plain caller-owned state:
// each instance tracks only its own operations, and sharing one across
// goroutines needs external synchronization.
type Metrics struct {
	componentsProcessed int
	totalPixels         int64
	methodUsage         map[Method]int
	averageRatio        float64
}

// Summary is a point-in-time snapshot of a Metrics instance.
type Summary struct {
	ComponentsProcessed int
	TotalPixels         int64
	MethodUsage         map[Method]int
	AverageRatio        float64
	MostUsedMethod      Method
	HasOperations       bool
}

// RecordOperation folds one upsampling call into the accumulator using an
// incremental mean over the output/input pixel ratio.
func (m *Metrics) RecordOperation(inputPixels, outputPixels int, method Method) {
	if m.methodUsage == nil {
		m.methodUsage = make(map[Method]int)
	}

	m.componentsProcessed++
	m.totalPixels += int64(outputPixels)
	m.methodUsage[method]++

	ratio := float64(outputPixels) / float64(inputPixels)
	n := float64(m.componentsProcessed)
	m.averageRatio = (m.averageRatio*(n-1) + ratio) / n
}

// Summary returns a snapshot. The usage map is copied so later operations do
// not show through.
func (m *Metrics) Summary() Summary {
	s := Summary{
		ComponentsProcessed: m.componentsProcessed,
		TotalPixels:         m.totalPixels,
		MethodUsage:         make(map[Method]int, len(m.methodUsage)),
		AverageRatio:        m.averageRatio,
		HasOperations:       m.componentsProcessed > 0,
	}

	best := -1
	for method, count := range m.methodUsage {
		s.MethodUsage[method] = count
		if count > best || (count == best && method < s.MostUsedMethod) {
			best = count
			s.MostUsedMethod = method
		}
	}
	return s
}

// Reset zeroes all fields.
func (m *Metrics) Reset() {
	m.componentsProcessed = 0
	m.totalPixels = 0
	m.methodUsage = nil
	m.averageRatio = 0
}
