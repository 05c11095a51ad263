package trace

import (
	"net/http"

	"golang.org/x/net/trace"
)

// EnableTracing controls whether to trace using the golang.org/x/net/trace package.
var EnableTracing = false

// localhost-only check installed by x/net/trace
var defaultAuth = trace.AuthRequest

// Init switches tracing on or off. When local is true only requests from
// localhost may read /debug/requests and /debug/events.
func Init(enableTracing bool, local bool) {
	if local {
		trace.AuthRequest = defaultAuth
	} else {
		trace.AuthRequest = func(req *http.Request) (any, sensitive bool) {
			return true, true
		}
	}
	EnableTracing = enableTracing
}

//ProxyTrace 跟踪
type ProxyTrace struct {
	tr trace.Trace
}

//TraceStart 开始跟踪
func TraceStart(family, title string) *ProxyTrace {
	if EnableTracing {
		return &ProxyTrace{tr: trace.New(family, title)}
	}
	return nil
}

func TraceFinish(pt *ProxyTrace) {
	if pt != nil && pt.tr != nil {
		pt.tr.Finish()
	}
}

func TracePrintf(pt *ProxyTrace, format string, a ...interface{}) {
	if pt != nil && pt.tr != nil {
		pt.tr.LazyPrintf(format, a...)
	}
}

func TraceErrorf(pt *ProxyTrace, format string, a ...interface{}) {
	if pt != nil && pt.tr != nil {
		pt.tr.LazyPrintf(format, a...)
		pt.tr.SetError()
	}
}
