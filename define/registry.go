package define

// registry accumulates definitions per classification while a directory is
// loaded. Keys must be unique within a classification; the same key may
// appear once as shared and once per environment.
type registry struct {
	tables map[Env]Table
	origin map[Env]map[string]string // key -> file that registered it
}

func newRegistry() *registry {
	r := &registry{
		tables: make(map[Env]Table, 3),
		origin: make(map[Env]map[string]string, 3),
	}

	for _, env := range []Env{Shared, Development, Production} {
		r.tables[env] = Table{}
		r.origin[env] = map[string]string{}
	}

	return r
}

// add registers key under the classification of e.
func (r *registry) add(e entry, key string, target Target) error {
	if _, ok := r.tables[e.env][key]; ok {
		return errDuplicateDefinition(e.file, r.origin[e.env][key], key, e.env)
	}

	r.tables[e.env][key] = target
	r.origin[e.env][key] = e.file

	return nil
}

// merge returns the per-environment tables. Each starts from the shared
// definitions; environment-specific definitions replace shared ones with the
// same key.
func (r *registry) merge() Tables {
	out := EmptyTables()

	for _, env := range []Env{Development, Production} {
		dst := out.For(env)

		for key, target := range r.tables[Shared] {
			dst[key] = target
		}

		for key, target := range r.tables[env] {
			dst[key] = target
		}
	}

	return out
}
