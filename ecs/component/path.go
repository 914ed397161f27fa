package component

// PathFollower moves an entity along a named path definition. The path is a
// weak reference by key, re-resolved through the path registry every tick;
// it never owns the definition.
type PathFollower struct {
	Path    string
	Segment int
	Frame   int
	Done    bool
}

var PathFollowerKind = NewKind[PathFollower]()
