package events

import "github.com/skygen-app/skygen/internal/logging"

type InboxTracer struct{}

var Inbox = InboxTracer{}

func (InboxTracer) Read(path string, lines int, offset int64) {
	logging.Trace("inbox.read", map[string]interface{}{"path": path, "lines": lines, "offset": offset})
}

func (InboxTracer) Truncated(path string, size, offset int64) {
	logging.Trace("inbox.truncated", map[string]interface{}{"path": path, "size": size, "offset": offset})
}

func (InboxTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("inbox.error", map[string]interface{}{"path": path, "error": err.Error()})
}
