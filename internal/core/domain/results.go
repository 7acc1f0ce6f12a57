package domain

// BuildRequest asks the runner to bring a database up to date with an input file.
type BuildRequest struct {
	InputPath string
	Force     bool
}

// BuildResult reports what MakeBlastDB did.
type BuildResult struct {
	Database string
	Plan     BuildPlan
	// Rebuilt is true when makeblastdb ran and succeeded.
	Rebuilt bool
	Status  VertexStatus
	// Tool is nil when makeblastdb was not invoked.
	Tool *ToolResult
}

// SearchJob is one blastp invocation.
type SearchJob struct {
	Query    string
	Database string
	Output   string
}

// SearchResult reports one finished blastp invocation.
type SearchResult struct {
	Job    SearchJob
	Status VertexStatus
	Tool   *ToolResult
}
