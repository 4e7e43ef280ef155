package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	auction "auction-ledger/internal/auctionEngine"
	"auction-ledger/internal/dispatch"
	"auction-ledger/internal/ledger"
	"auction-ledger/internal/server"
)

// SetupTestRouter initializes the router over a fresh in-memory ledger.
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := auction.NewEngine(ledger.NewMemoryStore())
	dispatcher := dispatch.NewDispatcher(engine)
	return server.SetupRouter(engine, dispatcher)
}

// SetupSeededRouter initializes the router with the demonstration ledger
// state: members A/B/C at balance 5000, vehicle 1234 owned by A, listing
// ABCD with reserve 3500.
func SetupSeededRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := auction.NewEngine(ledger.NewMemoryStore())
	if err := engine.InitLedger(context.Background()); err != nil {
		t.Fatalf("failed to seed ledger: %v", err)
	}
	dispatcher := dispatch.NewDispatcher(engine)
	return server.SetupRouter(engine, dispatcher)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON response body
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// QueryRecord fetches a record through GET /query and decodes it into out
func QueryRecord(t *testing.T, router *gin.Engine, key string, out any) {
	t.Helper()
	w := ExecuteRequest(t, router, "GET", "/query/"+key, nil)
	if w.Code != 200 {
		t.Fatalf("query %s returned status %d: %s", key, w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode record %s: %v", key, err)
	}
}
