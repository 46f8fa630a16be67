package model

// ScaffoldInput holds the answers collected before scaffolding a project
type ScaffoldInput struct {
	Endpoint       string // API base URL recorded in the environment sample
	SchemaFilename string // Schema filename recorded in the environment sample
}

// ScaffoldResult reports what a scaffold run touched. Existing files are
// never overwritten; they show up under Skipped instead.
type ScaffoldResult struct {
	Aborted bool     // True when the user declined the confirmation prompt
	Created []string // Paths created by this run
	Skipped []string // Paths left alone because they already existed
}

// Record files the path under Created or Skipped
func (r *ScaffoldResult) Record(path string, created bool) {
	if created {
		r.Created = append(r.Created, path)
	} else {
		r.Skipped = append(r.Skipped, path)
	}
}
