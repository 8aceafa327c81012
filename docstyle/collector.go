package docstyle

// Collector accumulates the diagnostics of one analysis call in the order
// they are reported. A Collector is not shared between calls.
type Collector struct {
	items []Diagnostic
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends a diagnostic.
func (c *Collector) Add(d Diagnostic) {
	c.items = append(c.items, d)
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	return len(c.items)
}

// Reset drops every collected diagnostic.
func (c *Collector) Reset() {
	c.items = nil
}

// Drain returns the collected diagnostics and resets the collector.
func (c *Collector) Drain() []Diagnostic {
	items := c.items
	c.Reset()
	if items == nil {
		return []Diagnostic{}
	}
	return items
}
