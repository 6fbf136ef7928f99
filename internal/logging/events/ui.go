package events

import "github.com/atomicstack/dropdown-control/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ValueTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Value  = ValueTracer{}
)

func (UITracer) MenuOpen() {
	logging.Trace("menu.open", nil)
}

func (UITracer) MenuClose(cause string) {
	logging.Trace("menu.close", map[string]interface{}{"cause": cause})
}

func (UITracer) MenuCursor(index int) {
	logging.Trace("menu.cursor", map[string]interface{}{"index": index})
}

func (UITracer) MenuCommit(index int) {
	logging.Trace("menu.commit", map[string]interface{}{"index": index})
}

func (FilterTracer) Applied(query string, visible int) {
	logging.Trace("filter.apply", map[string]interface{}{"query": query, "visible": visible})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (ValueTracer) Changed(old, new string, hadOld, hasNew bool) {
	logging.Trace("value.change", map[string]interface{}{
		"old":    old,
		"new":    new,
		"hadOld": hadOld,
		"hasNew": hasNew,
	})
}
