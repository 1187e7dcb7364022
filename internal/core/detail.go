package core

// DetailLevel controls how many metadata fields previews and searches include.
// Levels are decoder-defined; 0 is always the most compact form.
type DetailLevel int

// IncrementDetail raises level by one, clamped to max.
func IncrementDetail(level, max DetailLevel) DetailLevel {
	if level >= max {
		return max
	}
	return level + 1
}

// DecrementDetail lowers level by one, clamped to zero.
func DecrementDetail(level DetailLevel) DetailLevel {
	if level <= 0 {
		return 0
	}
	return level - 1
}
