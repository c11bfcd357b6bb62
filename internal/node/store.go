package node

// Store is the single source of truth for data-space nodes of both
// channels. It is mutated only through edits and replacement; readers get
// copies so a snapshot never changes under them.
type Store struct {
	opacity []Opacity
	colors  []Color

	// Called with the full sorted sequence after every change.
	OnOpacity func([]Opacity)
	OnColors  func([]Color)
}

func NewStore(opacity []Opacity, colors []Color) *Store {
	s := &Store{opacity: Clone(opacity), colors: Clone(colors)}
	Sort(s.opacity)
	Sort(s.colors)
	return s
}

func (s *Store) Opacity() []Opacity { return Clone(s.opacity) }
func (s *Store) Colors() []Color    { return Clone(s.colors) }

func (s *Store) SetOpacity(nodes []Opacity) {
	s.opacity = Clone(nodes)
	Sort(s.opacity)
	s.notifyOpacity()
}

func (s *Store) SetColors(nodes []Color) {
	s.colors = Clone(nodes)
	Sort(s.colors)
	s.notifyColors()
}

// ApplyOpacity applies e to the opacity channel. On error the store is
// left unchanged.
func (s *Store) ApplyOpacity(e Edit[float64]) error {
	out, err := Apply(s.opacity, e)
	if err != nil {
		return err
	}
	s.opacity = out
	s.notifyOpacity()
	return nil
}

// ApplyColor applies e to the color channel. On error the store is left
// unchanged.
func (s *Store) ApplyColor(e Edit[RGB]) error {
	out, err := Apply(s.colors, e)
	if err != nil {
		return err
	}
	s.colors = out
	s.notifyColors()
	return nil
}

func (s *Store) notifyOpacity() {
	if s.OnOpacity != nil {
		s.OnOpacity(Clone(s.opacity))
	}
}

func (s *Store) notifyColors() {
	if s.OnColors != nil {
		s.OnColors(Clone(s.colors))
	}
}
