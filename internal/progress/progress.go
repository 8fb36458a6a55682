// Package progress defines the event stream a scan emits while walking the
// tree. Handlers are synchronous; a slow handler slows the scan.
package progress

// EventType enumerates scan lifecycle events.
type EventType string

const (
	ScanStart      EventType = "scan_start"
	ScanComplete   EventType = "scan_complete"
	EnterDirectory EventType = "enter_directory"
	LeaveDirectory EventType = "leave_directory"
	FileAnalyzed   EventType = "file_analyzed"
	FileSkipped    EventType = "file_skipped"
	Info           EventType = "info"
)

// Event carries one progress notification.
type Event struct {
	Type    EventType
	Path    string
	Message string

	// Counters are cumulative at the time of the event
	FilesSeen     int
	FilesAnalyzed int
}

// Handler receives scan progress events.
type Handler interface {
	Handle(event Event)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(event Event)

func (f HandlerFunc) Handle(event Event) { f(event) }

// Null returns a handler that discards every event.
func Null() Handler {
	return HandlerFunc(func(Event) {})
}
