package client

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   []byte
}

func newStubServer(t *testing.T, status int, response string) (*Client, *recordedRequest) {
	t.Helper()

	rec := &recordedRequest{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Method = r.Method
		rec.Path = r.URL.Path
		rec.Query = r.URL.RawQuery
		rec.Body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(ts.Close)

	return New(ts.URL), rec
}

func TestCreatePrayerParsesInsertID(t *testing.T) {
	c, rec := newStubServer(t, http.StatusCreated, `{"message":"Prayer created successfully","insertId":42}`)

	id, err := c.CreatePrayer(CreatePrayerParams{
		CategoryID:  1,
		UserID:      1,
		Title:       "Health",
		Description: "For recovery",
	})
	if err != nil {
		t.Fatalf("CreatePrayer: %v", err)
	}
	if id != 42 {
		t.Errorf("insertId = %d, want 42", id)
	}
	if rec.Method != http.MethodPost || rec.Path != "/api/prayers" {
		t.Errorf("request = %s %s, want POST /api/prayers", rec.Method, rec.Path)
	}

	var sent map[string]any
	if err := json.Unmarshal(rec.Body, &sent); err != nil {
		t.Fatalf("decode sent body: %v", err)
	}
	if sent["categoryId"] != float64(1) || sent["title"] != "Health" {
		t.Errorf("sent body = %v", sent)
	}
	if _, present := sent["notes"]; present {
		t.Errorf("nil notes should be omitted, sent %v", sent)
	}
}

func TestPrayersSendsUserIDQuery(t *testing.T) {
	c, rec := newStubServer(t, http.StatusOK, `[{"id":1,"title":"Peace"}]`)

	prayers, err := c.Prayers(7)
	if err != nil {
		t.Fatalf("Prayers: %v", err)
	}
	if len(prayers) != 1 || prayers[0].Title != "Peace" {
		t.Errorf("prayers = %+v", prayers)
	}
	if rec.Path != "/api/prayers" || rec.Query != "userId=7" {
		t.Errorf("request = %s?%s, want /api/prayers?userId=7", rec.Path, rec.Query)
	}
}

func TestSearchPrayersEncodesKeyword(t *testing.T) {
	c, rec := newStubServer(t, http.StatusOK, `[]`)

	if _, err := c.SearchPrayers(1, "peace & quiet"); err != nil {
		t.Fatalf("SearchPrayers: %v", err)
	}
	if rec.Path != "/api/prayers/search" {
		t.Errorf("path = %s, want /api/prayers/search", rec.Path)
	}
	if rec.Query != "q=peace+%26+quiet&userId=1" {
		t.Errorf("query = %s", rec.Query)
	}
}

func TestMarkPrayerAnsweredTargetsAnswerRoute(t *testing.T) {
	c, rec := newStubServer(t, http.StatusOK, `{"message":"Prayer marked as answered successfully"}`)

	notes := "resolved"
	if err := c.MarkPrayerAnswered(5, 1, &notes); err != nil {
		t.Fatalf("MarkPrayerAnswered: %v", err)
	}
	if rec.Method != http.MethodPut || rec.Path != "/api/prayers/5/answer" {
		t.Errorf("request = %s %s, want PUT /api/prayers/5/answer", rec.Method, rec.Path)
	}
}

func TestDeleteCategorySendsUserIDQuery(t *testing.T) {
	c, rec := newStubServer(t, http.StatusOK, `{"message":"ok"}`)

	if err := c.DeleteCategory(3, 9); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if rec.Method != http.MethodDelete || rec.Path != "/api/categories/3" || rec.Query != "userId=9" {
		t.Errorf("request = %s %s?%s", rec.Method, rec.Path, rec.Query)
	}
}

func TestErrorResponseSurfacesAPIMessage(t *testing.T) {
	c, _ := newStubServer(t, http.StatusNotFound, `{"error":"Prayer not found"}`)

	_, err := c.Prayer(99, 1)
	if err == nil {
		t.Fatal("expected an error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Message != "Prayer not found" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}
