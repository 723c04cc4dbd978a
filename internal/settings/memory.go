package settings

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	Current Settings
	Saves   int
}

func (m *MemoryStore) Load() Settings {
	return m.Current
}

func (m *MemoryStore) Save(cfg Settings) error {
	m.Current = cfg
	m.Saves++
	return nil
}
