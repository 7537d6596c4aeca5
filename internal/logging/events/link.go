package events

import "github.com/skygen-app/skygen/internal/logging"

type LinkTracer struct{}

// LinkSource names where an incoming deep link came from.
type LinkSource string

const (
	SourceFlag   LinkSource = "flag"
	SourcePrompt LinkSource = "prompt"
	SourceInbox  LinkSource = "inbox"
)

var Link = LinkTracer{}

func (LinkTracer) Received(url string) {
	logging.Trace("link.received", map[string]interface{}{"url": url})
}

func (LinkTracer) Open(url string, source LinkSource) {
	logging.Trace("link.open", map[string]interface{}{"url": url, "source": string(source)})
}

func (LinkTracer) Dispatched(link, tab string, token uint64) {
	logging.Trace("link.dispatched", map[string]interface{}{"link": link, "tab": tab, "token": token})
}

func (LinkTracer) Overwritten(previous, next uint64) {
	logging.Trace("link.pending.overwritten", map[string]interface{}{"previous": previous, "next": next})
}

func (LinkTracer) Cleared(token uint64) {
	logging.Trace("link.pending.cleared", map[string]interface{}{"token": token})
}

func (LinkTracer) Stale(token, current uint64) {
	logging.Trace("link.pending.stale", map[string]interface{}{"token": token, "current": current})
}

func (LinkTracer) Generated(link, url string) {
	logging.Trace("link.generated", map[string]interface{}{"link": link, "url": url})
}
