package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testPipelineHooks struct {
	NoopPipelineHooks
	lookups  []string
	progress []float64
}

func (h *testPipelineHooks) OnLookupStart(_ context.Context, source, name string) {
	h.lookups = append(h.lookups, source+":"+name)
}

func (h *testPipelineHooks) OnProgress(_ context.Context, frac float64, _, _ string) {
	h.progress = append(h.progress, frac)
}

type testHTTPHooks struct {
	NoopHTTPHooks
	requests int
	errs     []error
}

func (h *testHTTPHooks) OnRequest(context.Context, string, string, string) {
	h.requests++
}

func (h *testHTTPHooks) OnError(_ context.Context, _, _, _ string, err error) {
	h.errs = append(h.errs, err)
}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("default pipeline hooks = %T, want NoopPipelineHooks", Pipeline())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("default HTTP hooks = %T, want NoopHTTPHooks", HTTP())
	}

	// No-ops must be callable without side effects.
	ctx := context.Background()
	Pipeline().OnLookupStart(ctx, "hmdb", "glucose")
	Pipeline().OnClassifyComplete(ctx, 1, time.Second)
	HTTP().OnResponse(ctx, "GET", "hmdb.ca", "/unearth/q", 200, time.Millisecond)
}

func TestSetPipelineHooks(t *testing.T) {
	defer Reset()

	hooks := &testPipelineHooks{}
	SetPipelineHooks(hooks)

	ctx := context.Background()
	Pipeline().OnLookupStart(ctx, "hmdb", "glucose")
	Pipeline().OnLookupStart(ctx, "kegg", "glucose")
	Pipeline().OnProgress(ctx, 0.15, "hmdb", "glucose")

	if len(hooks.lookups) != 2 || hooks.lookups[0] != "hmdb:glucose" {
		t.Errorf("lookups = %v", hooks.lookups)
	}
	if len(hooks.progress) != 1 || hooks.progress[0] != 0.15 {
		t.Errorf("progress = %v", hooks.progress)
	}
}

func TestSetHTTPHooks(t *testing.T) {
	defer Reset()

	hooks := &testHTTPHooks{}
	SetHTTPHooks(hooks)

	ctx := context.Background()
	HTTP().OnRequest(ctx, "GET", "rest.kegg.jp", "/find/compound/glucose")
	HTTP().OnError(ctx, "GET", "rest.kegg.jp", "/find/compound/glucose", errors.New("timeout"))

	if hooks.requests != 1 {
		t.Errorf("requests = %d, want 1", hooks.requests)
	}
	if len(hooks.errs) != 1 {
		t.Errorf("errs = %v, want one entry", hooks.errs)
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	defer Reset()

	hooks := &testPipelineHooks{}
	SetPipelineHooks(hooks)
	SetPipelineHooks(nil)

	if Pipeline() != PipelineHooks(hooks) {
		t.Error("nil registration replaced existing hooks")
	}
}

func TestReset(t *testing.T) {
	SetPipelineHooks(&testPipelineHooks{})
	SetHTTPHooks(&testHTTPHooks{})
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("after Reset, pipeline hooks = %T", Pipeline())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("after Reset, HTTP hooks = %T", HTTP())
	}
}
