package handlers_integrated_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	handler "github.com/rogerio-castellano/electronics-catalog-proxy/internal/http/handlers"
)

func decodeIDs(t *testing.T, body []byte) string {
	t.Helper()
	var products []map[string]any
	if err := json.Unmarshal(body, &products); err != nil {
		t.Fatalf("error decoding response %q: %v", body, err)
	}
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i], _ = p["product_id"].(string)
	}
	return strings.Join(ids, ",")
}

func TestStepEndpoints_AgainstUpstream(t *testing.T) {
	t.Cleanup(upstream.reset)

	tests := []struct {
		target string
		want   string
	}{
		{"/step1", "E-1,E-2,E-5,E-6"},
		{"/step2?release_date_start=2024-01-01", "E-1,E-5"},
		{"/step2?release_date_end=2024-01-31", "E-2,E-5,E-6"},
		{"/step3?brands=Samsung", "E-2,E-5"},
		{"/step3?brands=Samsung&release_date_end=2023-12-31", "E-2"},
		{"/step3?brands=Apple", ""},
		{"/step4?page_size=3&page_number=2", "E-6"},
		{"/step4?brands=Asus&page_size=1&page_number=2", "E-6"},
		{"/step4?page_size=3&page_number=3", ""},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := get(tt.target)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
			}
			if got := decodeIDs(t, w.Body.Bytes()); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStepEndpoints_KeepsUpstreamNumbers(t *testing.T) {
	t.Cleanup(upstream.reset)

	w := get("/step1")

	if !strings.Contains(w.Body.String(), `"price":1099.99`) {
		t.Errorf("expected price literal to be preserved, got %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"category_name":"Laptops"`) {
		t.Errorf("expected renamed category field, got %s", w.Body.String())
	}
}

func TestStepEndpoints_UpstreamError(t *testing.T) {
	t.Cleanup(upstream.reset)
	upstream.respond(http.StatusServiceUnavailable, `{"message":"maintenance"}`)

	w := get("/step2")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var resp handler.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Error != "Failed to fetch products." {
		t.Errorf("unexpected error %q", resp.Error)
	}
	if !strings.Contains(resp.Details, "status code 503") {
		t.Errorf("expected details to mention the upstream status, got %q", resp.Details)
	}
}

func TestStepEndpoints_NonArrayUpstreamIsEmpty(t *testing.T) {
	t.Cleanup(upstream.reset)

	for _, body := range []string{`{"products":[]}`, `<html>oops</html>`, `"text"`} {
		upstream.respond(http.StatusOK, body)

		w := get("/step3?brands=Asus")

		if w.Code != http.StatusOK {
			t.Fatalf("body %q: expected 200 OK, got %d", body, w.Code)
		}
		if got := strings.TrimSpace(w.Body.String()); got != "[]" {
			t.Errorf("body %q: expected [], got %s", body, got)
		}
	}
}

func TestStepEndpoints_ValidationSkipsUpstream(t *testing.T) {
	t.Cleanup(upstream.reset)
	upstream.reset()

	for _, target := range []string{
		"/step2?release_date_start=2024-13-99",
		"/step3?release_date_end=tomorrow",
		"/step4?page_number=1",
		"/step4?page_size=1&page_number=-1",
	} {
		w := get(target)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, w.Code)
		}
	}

	if n := upstream.requests(); n != 0 {
		t.Errorf("expected no upstream requests, got %d", n)
	}
}

func TestStepEndpoints_Idempotent(t *testing.T) {
	t.Cleanup(upstream.reset)

	first := get("/step4?brands=Asus,Samsung&page_size=2&page_number=1")
	second := get("/step4?brands=Asus,Samsung&page_size=2&page_number=1")

	if !bytes.Equal(first.Body.Bytes(), second.Body.Bytes()) {
		t.Errorf("expected byte-identical responses:\n%s\n%s", first.Body.String(), second.Body.String())
	}
}

func TestStepEndpoints_ConcurrentRequests(t *testing.T) {
	t.Cleanup(upstream.reset)
	upstream.reset()

	const workers = 20
	targets := []struct {
		target string
		want   string
	}{
		{"/step1", "E-1,E-2,E-5,E-6"},
		{"/step3?brands=Asus", "E-1,E-6"},
		{"/step4?page_size=2&page_number=2", "E-5,E-6"},
	}

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		tc := targets[i%len(targets)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := get(tc.target)
			if w.Code != http.StatusOK {
				errs <- fmt.Errorf("%s: status %d", tc.target, w.Code)
				return
			}
			var products []map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
				errs <- fmt.Errorf("%s: %v", tc.target, err)
				return
			}
			ids := make([]string, len(products))
			for j, p := range products {
				ids[j], _ = p["product_id"].(string)
			}
			if got := strings.Join(ids, ","); got != tc.want {
				errs <- fmt.Errorf("%s: expected %q, got %q", tc.target, tc.want, got)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
	if n := upstream.requests(); n != workers {
		t.Errorf("expected one upstream request per call (%d), got %d", workers, n)
	}
}
