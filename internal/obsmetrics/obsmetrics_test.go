package obsmetrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cleeus/obstack"
)

func TestReportExposesGauges(t *testing.T) {
	a, err := obstack.New(4096, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Release()

	obstack.Alloc[int64](a)
	Report("obsmetrics_test", a.Metrics())

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	Handler().ServeHTTP(rr, req)

	body := rr.Body.String()
	for _, want := range []string{
		"obstack_size_in_use_bytes",
		"obstack_capacity_bytes",
		"obstack_live_chunks",
		"obstack_registered_types",
		"obstack_utilization_ratio",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
