// services/hal/types.go
package hal

// CapInfo describes one capability's retained info document.
type CapInfo struct {
	Kind    string         // capability kind, e.g. "voltage"
	Channel string         // channel label, e.g. "AIN0"
	Info    map[string]any // small JSONable map
}
