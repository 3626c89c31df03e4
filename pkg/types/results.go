package types

// CategoryGroup is one category's files in merge order
type CategoryGroup struct {
	Category Category `json:"category" yaml:"category"`
	Files    []string `json:"files" yaml:"files"`
}

// ListResult holds the result of the 'list' command.
type ListResult struct {
	Root     string          `json:"root" yaml:"root"`
	Total    int             `json:"total" yaml:"total"`
	Groups   []CategoryGroup `json:"groups" yaml:"groups"`
	Problems int             `json:"problems" yaml:"problems"`
}

// MergeResult holds the result of a merge run.
// Processed counts every collected path, including Skipped ones.
type MergeResult struct {
	Root      string `json:"root"`
	Output    string `json:"output"`
	Processed int    `json:"processed"`
	Written   int    `json:"written"`
	Skipped   int    `json:"skipped"`
	Problems  int    `json:"problems"`
}

// Groups folds records, already in category order, into one group per
// category. Categories without records are left out.
func Groups(records []FileRecord) []CategoryGroup {
	var out []CategoryGroup
	for _, rec := range records {
		if n := len(out); n == 0 || out[n-1].Category != rec.Category {
			out = append(out, CategoryGroup{Category: rec.Category})
		}
		last := &out[len(out)-1]
		last.Files = append(last.Files, rec.Path)
	}
	return out
}
