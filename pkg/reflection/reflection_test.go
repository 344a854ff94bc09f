package reflection

import "testing"

func intPtr(v int) *int {
	return &v
}

func TestHasStudent(t *testing.T) {
	tests := map[string]bool{
		"":           false,
		"   ":        false,
		"Asha Verma": true,
		" Ravi ":     true,
	}

	for name, expected := range tests {
		if got := (Record{StudentName: name}).HasStudent(); got != expected {
			t.Errorf("HasStudent(%q) = %v, expected %v", name, got, expected)
		}
	}
}

func TestAnswersFrom(t *testing.T) {
	answers := AnswersFrom([]string{"a", "b"})
	if answers[0] != "a" || answers[1] != "b" {
		t.Errorf("unexpected leading answers %v", answers)
	}
	for i := 2; i < len(answers); i++ {
		if answers[i] != "" {
			t.Errorf("answer %d = %q, expected empty", i, answers[i])
		}
	}

	extra := AnswersFrom([]string{"1", "2", "3", "4", "5", "6"})
	if extra[4] != "5" {
		t.Errorf("fifth answer = %q, expected 5", extra[4])
	}
}

func TestResolveConfidence(t *testing.T) {
	tests := []struct {
		name           string
		before, after  *int
		expectedBefore int
		expectedAfter  int
	}{
		{"Both unset", nil, nil, 5, 5},
		{"After follows before", intPtr(3), nil, 3, 3},
		{"Both set", intPtr(2), intPtr(8), 2, 8},
		{"Only after set", nil, intPtr(9), 5, 9},
		{"After below before", intPtr(7), intPtr(4), 7, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, after := ResolveConfidence(tt.before, tt.after)
			if before != tt.expectedBefore || after != tt.expectedAfter {
				t.Errorf("ResolveConfidence() = (%d, %d), expected (%d, %d)",
					before, after, tt.expectedBefore, tt.expectedAfter)
			}
		})
	}
}
