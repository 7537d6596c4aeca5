package events

import "github.com/skygen-app/skygen/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) TabSwitch(from, to string) {
	logging.Trace("ui.tab", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) ListEnter(tab, itemID, label, filter string) {
	logging.Trace("ui.enter", map[string]interface{}{
		"tab":    tab,
		"item":   itemID,
		"label":  label,
		"filter": filter,
	})
}

func (UITracer) ListCursor(tab string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"tab": tab, "cursor": cursor})
}

func (UITracer) Back(tab string, depth int) {
	logging.Trace("ui.back", map[string]interface{}{"tab": tab, "depth": depth})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (ActionTracer) Share(url string) {
	logging.Trace("action.share", map[string]interface{}{"url": url})
}

func (FilterTracer) Cleared(tab string) {
	logging.Trace("filter.clear", map[string]interface{}{"tab": tab})
}

func (FilterTracer) WordBackspace(tab, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"tab": tab, "filter": filter})
}

func (FilterTracer) Cursor(tab string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"tab": tab, "cursor": pos})
}

func (FilterTracer) Append(tab, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"tab": tab, "filter": filter})
}

func (FilterTracer) Backspace(tab, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"tab": tab, "filter": filter})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
