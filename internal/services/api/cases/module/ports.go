package module

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
