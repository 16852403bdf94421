package language

// Selector maintains an ordered set of selected language codes against
// the fixed catalog. Insertion order is display-relevant and preserved.
type Selector struct {
	selected []string
}

// NewSelector seeds a selector with the given codes. Unknown and
// duplicate codes are dropped.
func NewSelector(codes ...string) *Selector {
	s := &Selector{}
	for _, code := range codes {
		s.Add(code)
	}
	return s
}

// Add appends code to the selection. Codes already selected or absent
// from the catalog are ignored, so Add is idempotent.
func (s *Selector) Add(code string) {
	if _, ok := Lookup(code); !ok {
		return
	}
	for _, existing := range s.selected {
		if existing == code {
			return
		}
	}
	s.selected = append(s.selected, code)
}

// Remove drops every occurrence of code from the selection.
func (s *Selector) Remove(code string) {
	kept := s.selected[:0]
	for _, existing := range s.selected {
		if existing != code {
			kept = append(kept, existing)
		}
	}
	s.selected = kept
}

// Selected returns the selection in insertion order.
func (s *Selector) Selected() []string {
	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

// SelectedLanguages resolves the selection against the catalog.
func (s *Selector) SelectedLanguages() []Language {
	out := make([]Language, 0, len(s.selected))
	for _, code := range s.selected {
		if lang, ok := Lookup(code); ok {
			out = append(out, lang)
		}
	}
	return out
}

// AvailableOptions returns the catalog minus already-selected codes,
// in catalog order. Used to prevent duplicate selection.
func (s *Selector) AvailableOptions() []Language {
	out := make([]Language, 0, len(Catalog))
	for _, lang := range Catalog {
		if !s.contains(lang.Code) {
			out = append(out, lang)
		}
	}
	return out
}

func (s *Selector) contains(code string) bool {
	for _, existing := range s.selected {
		if existing == code {
			return true
		}
	}
	return false
}
