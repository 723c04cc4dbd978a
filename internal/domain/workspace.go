package domain

// Entry is one row in the workspace index, corresponding to one saved
// request file. Method is a best-effort hint inferred from the file
// contents; nil when the file does not parse.
type Entry struct {
	Name   string
	Path   string
	Method *Method
}
