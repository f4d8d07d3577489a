package models

import "testing"

func TestCompletionPercent(t *testing.T) {
	r := &Roadmap{
		ID: "rm-test",
		Steps: []RoadmapStep{
			{ID: "s1"}, {ID: "s2"}, {ID: "s3"},
		},
	}

	cases := []struct {
		name      string
		completed []string
		want      int
	}{
		{"None", nil, 0},
		{"One", []string{"s1"}, 33},
		{"Two", []string{"s1", "s3"}, 66},
		{"All", []string{"s1", "s2", "s3"}, 100},
		{"ForeignStepsIgnored", []string{"other-1", "other-2"}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.CompletionPercent(tc.completed); got != tc.want {
				t.Errorf("CompletionPercent(%v) = %d, want %d", tc.completed, got, tc.want)
			}
		})
	}

	t.Run("EmptyRoadmap", func(t *testing.T) {
		empty := &Roadmap{ID: "rm-empty"}
		if got := empty.CompletionPercent([]string{"s1"}); got != 0 {
			t.Errorf("Empty roadmap should be 0 percent, got %d", got)
		}
	})
}
