package metric

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/yndnr/logmesh-go/internal/infra/param"
)

// ConfigMetrics must plug into param.Process.
var _ param.Observer = (*ConfigMetrics)(nil)

func TestConfigMetrics_ObserveParameter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewConfigMetrics(reg)

	specs := []param.Spec{
		param.Required("password_secret", param.NotBlankMinLength(param.MinSecretLength)),
		param.Optional("log_level", param.OneOf("info")),
	}
	param.Check(specs, param.MapSource{"password_secret": "too short"}, param.WithObserver(m))

	if got := testutil.ToFloat64(m.parameterChecks.WithLabelValues("password_secret", "invalid")); got != 1 {
		t.Errorf("password_secret invalid = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.parameterChecks.WithLabelValues("log_level", "unset")); got != 1 {
		t.Errorf("log_level unset = %v, want 1", got)
	}
}

func TestConfigMetrics_ObserveLoad(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewConfigMetrics(reg)

	m.ObserveLoad(nil)
	if got := testutil.ToFloat64(m.lastLoadSuccess); got != 1 {
		t.Errorf("last_load_success = %v, want 1", got)
	}

	m.ObserveLoad(errors.New("invalid"))
	if got := testutil.ToFloat64(m.lastLoadSuccess); got != 0 {
		t.Errorf("last_load_success = %v, want 0", got)
	}
	if got := testutil.ToFloat64(m.loads.WithLabelValues("success")); got != 1 {
		t.Errorf("loads success = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.loads.WithLabelValues("failure")); got != 1 {
		t.Errorf("loads failure = %v, want 1", got)
	}
}

func TestConfigMetrics_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewConfigMetrics(reg)

	defer func() {
		if recover() == nil {
			t.Error("registering twice on one registry should panic")
		}
	}()
	NewConfigMetrics(reg)
}

func TestHandler(t *testing.T) {
	reg := NewRegistry()
	m := NewConfigMetrics(reg)
	m.ObserveLoad(nil)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"logmesh_config_last_load_success 1", "go_goroutines"} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
