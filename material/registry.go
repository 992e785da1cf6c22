package material

// Registry maps material names to stable integer ids and holds the
// property record for each. ID 0 is always air.
//
// Grounded on systems.SystemRegistry's name/slice/map shape, generalized
// from a read-only metadata table to a mutable property registry whose
// Register call can update an existing record in place.
type Registry struct {
	byName map[string]ID
	byID   []*Material
}

// NewRegistry creates a registry with only the air record at id 0.
// Use NewDefaultRegistry for the full catalogue from spec.md §4.1.
func NewRegistry() *Registry {
	r := &Registry{
		byName: make(map[string]ID, 32),
		byID:   make([]*Material, 0, 32),
	}
	r.Register(airPreset())
	return r
}

// Register adds or updates a material. If a material with the same
// Name was already registered, its id is preserved and the property
// record is replaced in place. Returns the assigned id.
func (r *Registry) Register(m Material) ID {
	if len(m.Color) == 0 {
		m.Color = []RGBA{{200, 200, 200, 255}}
	}
	if id, ok := r.byName[m.Name]; ok {
		mm := m
		r.byID[id] = &mm
		return id
	}
	id := ID(len(r.byID))
	mm := m
	r.byID = append(r.byID, &mm)
	r.byName[m.Name] = id
	return id
}

// GetByID returns the material record for id, or the air record if id
// is unknown or out of range (spec.md §4.1 "Errors").
func (r *Registry) GetByID(id ID) *Material {
	if int(id) < 0 || int(id) >= len(r.byID) || r.byID[id] == nil {
		return r.byID[AirID]
	}
	return r.byID[id]
}

// IDOf returns the id for name, or AirID (0) if name is unknown.
func (r *Registry) IDOf(name string) ID {
	if id, ok := r.byName[name]; ok {
		return id
	}
	return AirID
}

// Air is a convenience for GetByID(AirID).
func (r *Registry) Air() *Material { return r.byID[AirID] }

// Count returns the number of registered materials, including air.
func (r *Registry) Count() int { return len(r.byID) }

// Names returns every registered material name in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.byID))
	for id, m := range r.byID {
		names[id] = m.Name
	}
	return names
}
