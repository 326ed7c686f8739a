package entity

// BuildFailure is a project that could not be built.
type BuildFailure struct {
	ProjectID string `json:"projectId"`
	Stage     string `json:"stage"` // "discovery" or "build"
	Message   string `json:"message"`
	Err       error  `json:"-"`
}

// BuildReport summarises one catalog build.
type BuildReport struct {
	Built  []string       `json:"built"`
	Failed []BuildFailure `json:"failed"`
}

// OK reports whether every configured project was built.
func (r BuildReport) OK() bool {
	return len(r.Failed) == 0
}
