package model1

// Fields represents the rendered cells of a row.
type Fields []string

func (f Fields) Diff(ff Fields) bool {
	if len(f) != len(ff) {
		return true
	}
	for i := range f {
		if f[i] != ff[i] {
			return true
		}
	}
	return false
}

func (f Fields) Clone() Fields {
	cp := make(Fields, len(f))
	copy(cp, f)
	return cp
}
