package language

import "testing"

func TestSelectorAdd(t *testing.T) {
	s := NewSelector()
	s.Add("fr")
	s.Add("en")
	s.Add("fr") // duplicate, ignored
	s.Add("xx") // not in catalog, ignored

	got := s.Selected()
	want := []string{"fr", "en"}
	if len(got) != len(want) {
		t.Fatalf("Selected() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Selected()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSelectorPreservesInsertionOrder(t *testing.T) {
	s := NewSelector("de", "fr", "en")
	got := s.Selected()
	want := []string{"de", "fr", "en"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Selected() = %v, want %v", got, want)
		}
	}
}

func TestSelectorRemove(t *testing.T) {
	s := NewSelector("fr", "en", "de")
	s.Remove("en")
	s.Remove("xx") // no-op

	got := s.Selected()
	want := []string{"fr", "de"}
	if len(got) != len(want) {
		t.Fatalf("Selected() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Selected()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSelectorAvailableOptionsExcludesSelected(t *testing.T) {
	s := NewSelector("fr", "en")
	options := s.AvailableOptions()

	if len(options) != len(Catalog)-2 {
		t.Fatalf("AvailableOptions() has %d entries, want %d", len(options), len(Catalog)-2)
	}
	for _, lang := range options {
		if lang.Code == "fr" || lang.Code == "en" {
			t.Errorf("AvailableOptions() contains selected code %q", lang.Code)
		}
	}
}

func TestSelectedLanguagesResolvesCatalogEntries(t *testing.T) {
	s := NewSelector("fr", "ja")
	langs := s.SelectedLanguages()
	if len(langs) != 2 {
		t.Fatalf("SelectedLanguages() has %d entries, want 2", len(langs))
	}
	if langs[0].Name != "Français" || langs[1].Name != "日本語" {
		t.Errorf("SelectedLanguages() = %v, want catalog entries for fr and ja", langs)
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("fr"); !ok {
		t.Error("Lookup(fr) not found, want found")
	}
	if _, ok := Lookup("xx"); ok {
		t.Error("Lookup(xx) found, want not found")
	}
}
