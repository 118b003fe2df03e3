package conf

// Layer is one parsed configuration source.
type Layer struct {
	Source ConfigSource
	Values map[string]string
}

// Merged is the result of layering sources: the winning value of every key
// and the source it came from.
type Merged struct {
	Values  map[string]string
	Origins map[string]ConfigSource
}

// update overlays values from src, the way a later layer shadows an earlier
// one. Keys the layer does not set are preserved.
func (m *Merged) update(src ConfigSource, values map[string]string) {
	for k, v := range values {
		m.Values[k] = v
		m.Origins[k] = src
	}
}

// Merge applies layers in order, later layers overriding earlier ones, and
// applies processEnv last. It does not modify its arguments.
func Merge(layers []Layer, processEnv map[string]string) Merged {
	m := Merged{
		Values:  make(map[string]string),
		Origins: make(map[string]ConfigSource),
	}
	for _, l := range layers {
		m.update(l.Source, l.Values)
	}
	m.update(processEnvSource, processEnv)
	return m
}
