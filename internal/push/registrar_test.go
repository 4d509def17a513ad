package push

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"fixitfast_technician/internal/events"
	"fixitfast_technician/internal/tasks"
	"fixitfast_technician/internal/transport"
	"fixitfast_technician/platform/logger"
)

type testConfig struct {
	baseURL  string
	platform string
}

func (c testConfig) GetBackendBaseURL() string     { return c.baseURL }
func (c testConfig) GetBackendID() string          { return "backend-1" }
func (c testConfig) GetHTTPTimeout() time.Duration { return 5 * time.Second }
func (c testConfig) GetRetryLimit() int            { return 0 }
func (c testConfig) GetPlatform() string           { return c.platform }
func (c testConfig) GetAndroidAppKey() string      { return "android-key" }
func (c testConfig) GetIOSAppKey() string          { return "ios-key" }

type staticCreds struct{}

func (staticCreds) AuthorizationHeader() string { return "Bearer tok123" }
func (staticCreds) Authenticated() bool         { return true }

type recordedCall struct {
	path    string
	body    registration
	headers http.Header
}

func newRegistrar(t *testing.T, platform string, handler http.HandlerFunc) (*Registrar, *tasks.Pool) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	cfg := testConfig{baseURL: ts.URL, platform: platform}
	log := logger.New("development")
	pool := tasks.NewPool(2, log)
	t.Cleanup(func() { pool.Shutdown(context.Background()) })
	bus := events.NewInMemoryBus(log)
	return NewRegistrar(transport.NewClient(cfg, log), staticCreds{}, cfg, cfg, pool, bus, log), pool
}

func recordingHandler(t *testing.T, calls chan<- recordedCall, status int) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body registration
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Errorf("registration body is not valid JSON: %v", err)
		}
		calls <- recordedCall{path: r.URL.Path, body: body, headers: r.Header.Clone()}
		w.WriteHeader(status)
	}
}

func waitCall(t *testing.T, calls <-chan recordedCall) recordedCall {
	t.Helper()
	select {
	case c := <-calls:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for registration call")
		return recordedCall{}
	}
}

func TestRegisterAndroid(t *testing.T) {
	calls := make(chan recordedCall, 1)
	reg, _ := newRegistrar(t, "android", recordingHandler(t, calls, http.StatusOK))

	if !reg.Register("tok-abc") {
		t.Fatal("Register did not queue the task")
	}
	call := waitCall(t, calls)

	if call.path != "/mobile/platform/devices/register" {
		t.Errorf("path = %q", call.path)
	}
	if call.body.MobileClient.ID != "com.oracle.FixItFastTechnician" {
		t.Errorf("client id = %q", call.body.MobileClient.ID)
	}
	if call.body.MobileClient.Platform != "ANDROID" {
		t.Errorf("platform = %q, want ANDROID", call.body.MobileClient.Platform)
	}
	if call.body.MobileClient.Version != "1.0" {
		t.Errorf("version = %q, want 1.0", call.body.MobileClient.Version)
	}
	if call.body.NotificationToken != "tok-abc" {
		t.Errorf("token = %q", call.body.NotificationToken)
	}
	if got := call.headers.Get("Oracle-Mobile-Backend-Id"); got != "backend-1" {
		t.Errorf("backend id header = %q", got)
	}
	if got := call.headers.Get("Authorization"); got != "Bearer tok123" {
		t.Errorf("Authorization header = %q", got)
	}
}

func TestRegisterIOSBundleID(t *testing.T) {
	calls := make(chan recordedCall, 1)
	reg, _ := newRegistrar(t, "ios", recordingHandler(t, calls, http.StatusOK))

	reg.Register("tok-ios")
	call := waitCall(t, calls)

	if call.body.MobileClient.ID != "com.oraclecorp.internal.ent3.FixItFastTechnician" {
		t.Errorf("client id = %q", call.body.MobileClient.ID)
	}
	if call.body.MobileClient.Platform != "IOS" {
		t.Errorf("platform = %q, want IOS", call.body.MobileClient.Platform)
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	calls := make(chan recordedCall, 2)
	reg, pool := newRegistrar(t, "android", recordingHandler(t, calls, http.StatusOK))

	reg.Register("tok-abc")
	waitCall(t, calls)

	// wait for the task to record success before the second call
	deadline := time.Now().Add(2 * time.Second)
	for !reg.Registered() {
		if time.Now().After(deadline) {
			t.Fatal("registration never recorded success")
		}
		time.Sleep(5 * time.Millisecond)
	}

	reg.Register("tok-abc")
	pool.Shutdown(context.Background())

	select {
	case c := <-calls:
		t.Fatalf("second Register issued a request to %s", c.path)
	default:
	}
}

func TestDeregisterOmitsVersionAndClearsState(t *testing.T) {
	calls := make(chan recordedCall, 2)
	reg, _ := newRegistrar(t, "android", recordingHandler(t, calls, http.StatusOK))

	reg.Register("tok-abc")
	waitCall(t, calls)

	reg.Deregister("tok-abc")
	call := waitCall(t, calls)

	if call.path != "/mobile/platform/devices/deregister" {
		t.Errorf("path = %q", call.path)
	}
	if call.body.MobileClient.Version != "" {
		t.Errorf("deregister payload carries version %q", call.body.MobileClient.Version)
	}

	deadline := time.Now().Add(2 * time.Second)
	for reg.Registered() {
		if time.Now().After(deadline) {
			t.Fatal("deregistration never cleared state")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestRegisterRejectedDoesNotMarkRegistered(t *testing.T) {
	calls := make(chan recordedCall, 1)
	reg, pool := newRegistrar(t, "android", recordingHandler(t, calls, http.StatusBadRequest))

	reg.Register("tok-abc")
	waitCall(t, calls)
	pool.Shutdown(context.Background())

	if reg.Registered() {
		t.Error("rejected registration marked the device as registered")
	}
}

func TestRegisterPublishesTokenRegistered(t *testing.T) {
	log := logger.New("development")
	bus := events.NewInMemoryBus(log)

	var mu sync.Mutex
	var got []events.TokenRegistered
	bus.Subscribe("push.token.registered", events.HandlerFunc(func(ctx context.Context, e events.Event) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.(events.TokenRegistered))
		return nil
	}))

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)

	cfg := testConfig{baseURL: ts.URL, platform: "android"}
	pool := tasks.NewPool(1, log)
	reg := NewRegistrar(transport.NewClient(cfg, log), staticCreds{}, cfg, cfg, pool, bus, log)

	reg.Register("tok-abc")
	pool.Shutdown(context.Background())
	bus.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 {
		t.Fatalf("published %d TokenRegistered events, want 1", len(got))
	}
	if got[0].Provider != "android" || got[0].Status != http.StatusOK {
		t.Errorf("event = %+v", got[0])
	}
}
