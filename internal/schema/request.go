package schema

// ExecutionRequest describes a single program to launch. A nil Args slice
// means that the program is started without any arguments.
type ExecutionRequest struct {
	Path string
	Args []string
}
