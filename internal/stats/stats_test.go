package stats

import "testing"

func TestChangePercentage_AllUnchanged(t *testing.T) {
	s := Statistics{Unchanged: 10}
	if got := s.ChangePercentage(); got != 0 {
		t.Errorf("ChangePercentage() = %v, want 0", got)
	}
}

func TestChangePercentage_AllChanged(t *testing.T) {
	s := Statistics{Insertions: 3, Deletions: 2, Moves: 1}
	if got := s.ChangePercentage(); got != 100 {
		t.Errorf("ChangePercentage() = %v, want 100", got)
	}
}

func TestChangePercentage_Mixed(t *testing.T) {
	s := Statistics{Insertions: 1, Unchanged: 1}
	if got := s.ChangePercentage(); got != 50 {
		t.Errorf("ChangePercentage() = %v, want 50", got)
	}
}

func TestChangePercentage_ZeroEverything(t *testing.T) {
	s := Statistics{}
	if got := s.ChangePercentage(); got != 0 {
		t.Errorf("ChangePercentage() = %v, want 0 (denominator floors at 1)", got)
	}
}

func TestAddMatchedParagraph(t *testing.T) {
	var s Statistics
	s.AddMatchedParagraph(2, 1, 5)
	if s.Insertions != 2 || s.Deletions != 1 || s.Unchanged != 5 {
		t.Errorf("got %+v", s)
	}
}
