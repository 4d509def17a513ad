package incidents

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"fixitfast_technician/internal/transport"
	"fixitfast_technician/platform/apperr"
	"fixitfast_technician/platform/logger"
)

type testBackendConfig struct {
	baseURL string
}

func (c testBackendConfig) GetBackendBaseURL() string     { return c.baseURL }
func (c testBackendConfig) GetBackendID() string          { return "backend-1" }
func (c testBackendConfig) GetHTTPTimeout() time.Duration { return 5 * time.Second }
func (c testBackendConfig) GetRetryLimit() int            { return 0 }

type staticCreds struct{}

func (staticCreds) AuthorizationHeader() string { return "Basic am9lOnNlY3JldA==" }
func (staticCreds) Authenticated() bool         { return true }

type staticLocation struct{ position string }

func (l staticLocation) Position() string  { return l.position }
func (l staticLocation) Latitude() string  { return "39.355589" }
func (l staticLocation) Longitude() string { return "-120.652492" }

const listBody = `{"items":[
	{"id":1,"title":"Leaking Water Heater","status":"New","priority":"High",
	 "createdon":"2015-03-27 14:12","driveTime":"25 minutes",
	 "imageLink":"storage/collections/FIF_UserData/objects/obj1?user=lynn1014",
	 "notes":"\n2015-04-01T12:59:09.444Z\nmy water heater is broken\n",
	 "contact":{"name":"Lynn Smith","street":"45 O Connor Street","city":"Ottawa","postalCode":"12345"}},
	{"id":2,"title":"Broken Dishwasher","status":"InProgress","priority":"Medium",
	 "createdon":"2015-03-28 09:30","contact":{"name":"Sam Kurtz"}},
	{"id":3,"title":"Dryer Vent","status":"Complete","priority":"Low",
	 "createdon":"2015-03-29 11:00","contact":{"name":"Ann Ray"}}
]}`

func newRepo(t *testing.T, handler http.HandlerFunc) *Repository {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	cfg := testBackendConfig{baseURL: ts.URL}
	log := logger.New("development")
	client := transport.NewClient(cfg, log)
	return NewRepository(client, staticCreds{}, cfg, staticLocation{position: "39.355589,-120.652492"}, nil, log)
}

func listHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listBody))
	}
}

func TestQueryRequiresAFilter(t *testing.T) {
	repo := newRepo(t, listHandler(t))

	_, err := repo.Query(context.Background(), "", "")
	if err == nil {
		t.Fatal("expected InvalidFilter error")
	}
	if !apperr.Is(err, apperr.KindInvalidFilter) {
		t.Errorf("kind = %v, want KindInvalidFilter", apperr.GetKind(err))
	}
}

func TestQueryForTechnicianBuildsRequest(t *testing.T) {
	var gotQuery, gotAuth, gotBackendID string
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotBackendID = r.Header.Get("Oracle-Mobile-Backend-Id")
		w.Write([]byte(listBody))
	})

	result, err := repo.QueryForTechnician(context.Background(), "joe@fixit.com")
	if err != nil {
		t.Fatalf("QueryForTechnician: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("got %d incidents, want 3", len(result))
	}
	if gotAuth == "" {
		t.Error("Authorization header missing")
	}
	if gotBackendID != "backend-1" {
		t.Errorf("backend id header = %q", gotBackendID)
	}
	values, err := url.ParseQuery(gotQuery)
	if err != nil {
		t.Fatalf("parse query %q: %v", gotQuery, err)
	}
	if values.Get("technician") != "joe@fixit.com" {
		t.Errorf("technician = %q", values.Get("technician"))
	}
	if values.Get("contacts") != "" {
		t.Errorf("contacts should be absent, got %q", values.Get("contacts"))
	}
	if values.Get("gps") != "39.355589,-120.652492" {
		t.Errorf("gps = %q", values.Get("gps"))
	}
}

func TestQueryForContactBuildsRequest(t *testing.T) {
	var gotQuery string
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(listBody))
	})

	if _, err := repo.QueryForContact(context.Background(), "lynn1014"); err != nil {
		t.Fatalf("QueryForContact: %v", err)
	}
	values, err := url.ParseQuery(gotQuery)
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	if values.Get("contacts") != "lynn1014" {
		t.Errorf("contacts = %q", values.Get("contacts"))
	}
}

func TestQueryFailureDegradesToEmptyListWithMessage(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	result, err := repo.QueryForTechnician(context.Background(), "joe@fixit.com")
	if err != nil {
		t.Fatalf("read-path failure must not raise, got %v", err)
	}
	if len(result) != 0 {
		t.Errorf("got %d incidents, want 0", len(result))
	}
	if !repo.HasMessage() {
		t.Error("advisory message not set")
	}
	if repo.Message() == "" {
		t.Error("advisory message empty")
	}
}

func TestFilterAllIsADistinctCopyOfTheCache(t *testing.T) {
	repo := newRepo(t, listHandler(t))
	if _, err := repo.QueryForTechnician(context.Background(), "joe@fixit.com"); err != nil {
		t.Fatal(err)
	}

	repo.FilterByStatus("INPROGRESS")
	repo.FilterByStatus("ALL")

	cached := repo.Cached()
	displayed := repo.Displayed()
	if len(displayed) != len(cached) {
		t.Fatalf("displayed %d, cache %d", len(displayed), len(cached))
	}
	for i := range cached {
		if displayed[i].ID != cached[i].ID {
			t.Errorf("order mismatch at %d: %d vs %d", i, displayed[i].ID, cached[i].ID)
		}
	}
}

func TestFilterByStatusSelectsMatchesCaseInsensitively(t *testing.T) {
	repo := newRepo(t, listHandler(t))
	if _, err := repo.QueryForTechnician(context.Background(), "joe@fixit.com"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		filter  string
		wantIDs []int
	}{
		{"NEW", []int{1}},
		{"inprogress", []int{2}},
		{"Complete", []int{3}},
	}
	for _, tt := range tests {
		repo.FilterByStatus(tt.filter)
		displayed := repo.Displayed()
		if len(displayed) != len(tt.wantIDs) {
			t.Errorf("filter %q: got %d incidents, want %d", tt.filter, len(displayed), len(tt.wantIDs))
			continue
		}
		for i, want := range tt.wantIDs {
			if displayed[i].ID != want {
				t.Errorf("filter %q: id[%d] = %d, want %d", tt.filter, i, displayed[i].ID, want)
			}
		}
	}
}

func TestFilterByStatusUnrecognizedIsANoOp(t *testing.T) {
	repo := newRepo(t, listHandler(t))
	if _, err := repo.QueryForTechnician(context.Background(), "joe@fixit.com"); err != nil {
		t.Fatal(err)
	}
	repo.FilterByStatus("COMPLETE")
	before := repo.Displayed()

	repo.FilterByStatus("bogus")

	after := repo.Displayed()
	if len(after) != len(before) {
		t.Fatalf("displayed list changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if after[i].ID != before[i].ID {
			t.Errorf("displayed list changed at %d", i)
		}
	}
}

func TestGetByIDAlwaysFetchesLive(t *testing.T) {
	detailCalls := 0
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/mobile/custom/incident/incidents/1" {
			detailCalls++
			w.Write([]byte(`{"id":1,"title":"Leaking Water Heater","status":"New","priority":"High",
				"createdon":"2015-03-27 14:12","contact":{"name":"Lynn Smith"}}`))
			return
		}
		w.Write([]byte(listBody))
	})

	if _, err := repo.QueryForTechnician(context.Background(), "joe@fixit.com"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		incident := repo.GetByID(context.Background(), 1)
		if incident == nil {
			t.Fatalf("GetByID returned nil: %s", repo.Message())
		}
		if incident.Title != "Leaking Water Heater" {
			t.Errorf("title = %q", incident.Title)
		}
	}
	if detailCalls != 2 {
		t.Errorf("detail endpoint hit %d times, want 2 (cache must be bypassed)", detailCalls)
	}
}

func TestGetByIDParsesNotes(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"title":"Leaking Water Heater","status":"New","priority":"High",
			"createdon":"2015-03-27 14:12",
			"notes":"\n2015-04-01T12:59:09.444Z\nwater heater is broken\n2015-04-02T08:10:11.222Z\ntechnician dispatched\n",
			"contact":{"name":"Lynn Smith"}}`))
	})

	incident := repo.GetByID(context.Background(), 1)
	if incident == nil {
		t.Fatalf("GetByID returned nil: %s", repo.Message())
	}
	if len(incident.Notes) != 2 {
		t.Fatalf("decoded %d note items, want 2", len(incident.Notes))
	}
	for i, item := range incident.Notes {
		if item.Index != i+1 {
			t.Errorf("note %d has index %d", i, item.Index)
		}
	}
	if incident.Notes[1].Message != "2015-04-02T08:10:11.222Z\ntechnician dispatched" {
		t.Errorf("second note = %q", incident.Notes[1].Message)
	}
}

func TestGetByIDFailureReturnsNilWithMessage(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	if incident := repo.GetByID(context.Background(), 99); incident != nil {
		t.Fatalf("got %+v, want nil", incident)
	}
	if !repo.HasMessage() {
		t.Error("advisory message not set")
	}
}

func TestUpdateStatusRoundTrip(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody []byte
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	})

	if ok := repo.UpdateStatus(context.Background(), 1, "InProgress", "on my way"); !ok {
		t.Fatalf("UpdateStatus failed: %s", repo.Message())
	}
	if gotMethod != http.MethodPut {
		t.Errorf("method = %q, want PUT", gotMethod)
	}
	if gotPath != "/mobile/custom/incident/incidents/1/status" {
		t.Errorf("path = %q", gotPath)
	}
	var body statusUpdate
	if err := json.Unmarshal(gotBody, &body); err != nil {
		t.Fatalf("unmarshal body %q: %v", gotBody, err)
	}
	if body.Status != "InProgress" || body.Notes != "on my way" {
		t.Errorf("body = %+v", body)
	}
}

func TestUpdateStatusDoesNotMutateCache(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.Write([]byte(listBody))
	})

	if _, err := repo.QueryForTechnician(context.Background(), "joe@fixit.com"); err != nil {
		t.Fatal(err)
	}
	if ok := repo.UpdateStatus(context.Background(), 1, "Complete", ""); !ok {
		t.Fatal("UpdateStatus failed")
	}
	if got := repo.Cached()[0].Status; got != "New" {
		t.Errorf("cache mutated: status = %q, want New", got)
	}
}

func TestUpdateStatusRejectedSetsMessage(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	if ok := repo.UpdateStatus(context.Background(), 1, "Complete", ""); ok {
		t.Fatal("UpdateStatus reported success on 400")
	}
	if !repo.HasMessage() {
		t.Error("advisory message not set")
	}
}

func TestClearAndReset(t *testing.T) {
	listCalls := 0
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		listCalls++
		w.Write([]byte(listBody))
	})

	if _, err := repo.QueryForTechnician(context.Background(), "joe@fixit.com"); err != nil {
		t.Fatal(err)
	}
	repo.Clear()
	if repo.HasCache() {
		t.Error("cache survived Clear")
	}

	repo.Reset(context.Background())
	if !repo.HasCache() {
		t.Error("Reset did not re-fetch")
	}
	if listCalls != 2 {
		t.Errorf("list endpoint hit %d times, want 2", listCalls)
	}
}

func TestDecodeListSkipsInvalidRecords(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[
			{"title":"missing id","status":"New","contact":{"name":"x"}},
			{"id":7,"title":"ok","status":"New","contact":{"name":"y"}}
		]}`))
	})

	result, err := repo.QueryForTechnician(context.Background(), "joe@fixit.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(result) != 1 || result[0].ID != 7 {
		t.Fatalf("got %+v, want the single valid record", result)
	}
}
