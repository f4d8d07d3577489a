package models

type RoadmapStep struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type Roadmap struct {
	ID    string        `json:"id"`
	Title string        `json:"title"`
	Track string        `json:"track"`
	Steps []RoadmapStep `json:"steps"`
}

// CompletionPercent computes a user's progress through the roadmap as
// completed/total*100, rounded down. An empty roadmap is 0 percent.
func (r *Roadmap) CompletionPercent(completed []string) int {
	if len(r.Steps) == 0 {
		return 0
	}
	done := 0
	set := make(map[string]struct{}, len(completed))
	for _, id := range completed {
		set[id] = struct{}{}
	}
	for _, s := range r.Steps {
		if _, ok := set[s.ID]; ok {
			done++
		}
	}
	return done * 100 / len(r.Steps)
}
