package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"prayernotebook/pkg/types"

	"github.com/sirupsen/logrus"
)

func newTestServer(t *testing.T) (*httptest.Server, *memStore) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	config := &types.Config{
		ServerPort:      8080,
		ReadTimeoutSec:  5,
		WriteTimeoutSec: 5,
	}

	ms := newMemStore()
	svc := New(config, logger, ms, ms, ms)

	ts := httptest.NewServer(svc.Router())
	t.Cleanup(ts.Close)

	return ts, ms
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	return resp, data
}

func decodeJSON(t *testing.T, data []byte, dst any) {
	t.Helper()
	if err := json.Unmarshal(data, dst); err != nil {
		t.Fatalf("decode %q: %v", data, err)
	}
}

type createdResponse struct {
	InsertID int64 `json:"insertId"`
}

func mustCreateCategory(t *testing.T, ts *httptest.Server, userID int64, name string) int64 {
	t.Helper()

	resp, data := doJSON(t, http.MethodPost, ts.URL+"/api/categories", map[string]any{
		"userId": userID,
		"name":   name,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create category: status %d, body %s", resp.StatusCode, data)
	}

	var created createdResponse
	decodeJSON(t, data, &created)
	return created.InsertID
}

func mustCreatePrayer(t *testing.T, ts *httptest.Server, body map[string]any) int64 {
	t.Helper()

	resp, data := doJSON(t, http.MethodPost, ts.URL+"/api/prayers", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create prayer: status %d, body %s", resp.StatusCode, data)
	}

	var created createdResponse
	decodeJSON(t, data, &created)
	return created.InsertID
}
