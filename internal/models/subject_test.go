package models

import "testing"

func TestSubjectIsValid(t *testing.T) {
	for _, s := range Subjects() {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []Subject{"", "aws", "Math", "AWS ", "System  Design"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestSubjectsCount(t *testing.T) {
	if got := len(Subjects()); got != 8 {
		t.Errorf("Subjects() returned %d entries, want 8", got)
	}
}
