package components

import "testing"

func TestIntervalBar_View(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		expect    string
	}{
		{"start of plan", 0, 4, "□□□□ 0/4"},
		{"mid plan", 2, 4, "■■□□ 2/4"},
		{"finished", 4, 4, "■■■■ 4/4"},
		{"clamps negative", -1, 2, "□□ 0/2"},
		{"clamps overflow", 9, 2, "■■ 2/2"},
		{"empty plan", 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewIntervalBar(tt.completed, tt.total).View()
			if got != tt.expect {
				t.Errorf("got %q, want %q", got, tt.expect)
			}
		})
	}
}
