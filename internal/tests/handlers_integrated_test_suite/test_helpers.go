package handlers_integrated_test_suite

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	api "github.com/rogerio-castellano/electronics-catalog-proxy/internal/http"
	handler "github.com/rogerio-castellano/electronics-catalog-proxy/internal/http/handlers"
	"github.com/rogerio-castellano/electronics-catalog-proxy/internal/repo"
)

// fakeUpstream stands in for the electronics catalog API.
type fakeUpstream struct {
	mu     sync.Mutex
	status int
	body   string
	hits   int
}

func (f *fakeUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	status, body := f.status, f.body
	f.hits++
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (f *fakeUpstream) respond(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status, f.body = status, body
}

func (f *fakeUpstream) requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits
}

func (f *fakeUpstream) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status, f.body, f.hits = http.StatusOK, snapshot, 0
}

var (
	upstream *fakeUpstream
	router   http.Handler
)

func init() {
	upstream = &fakeUpstream{status: http.StatusOK, body: snapshot}
	srv := httptest.NewServer(upstream)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	productRepo := repo.NewHTTPProductRepository(srv.URL, 2*time.Second)
	router = api.NewRouter(handler.NewServer(productRepo, logger), logger)
}

func get(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// snapshot mixes complete products with ones the completeness gate must drop:
// E-3 has an empty description, E-4 has no ratings, E-7 has no price.
const snapshot = `[
  {"productId":"E-1","productName":"ZenBook 14","brandName":"Asus","category":"Laptops","description":"Thin laptop","price":1099.99,"currency":"USD","processor":"Core Ultra 7","memory":"16GB","releaseDate":"2024-02-15","averageRating":4.6,"ratingCount":812},
  {"productId":"E-2","productName":"Galaxy Tab S9","brandName":"Samsung","category":"Tablets","description":"AMOLED tablet","price":799,"currency":"USD","processor":"Snapdragon 8 Gen 2","memory":"8GB","releaseDate":"2023-08-11","averageRating":4.4,"ratingCount":1530},
  {"productId":"E-3","productName":"Pixel 8","brandName":"Google","category":"Phones","description":"","price":699,"currency":"USD","processor":"Tensor G3","memory":"8GB","releaseDate":"2023-10-12","averageRating":4.3,"ratingCount":2210},
  {"productId":"E-4","productName":"MacBook Air 13","brandName":"Apple","category":"Laptops","description":"M3 laptop","price":1099,"currency":"USD","processor":"Apple M3","memory":"8GB","releaseDate":"2024-03-08","averageRating":4.8,"ratingCount":0},
  {"productId":"E-5","productName":"Galaxy S24","brandName":"Samsung","category":"Phones","description":"Flagship phone","price":899,"currency":"USD","processor":"Exynos 2400","memory":"8GB","releaseDate":"2024-01-31","averageRating":4.5,"ratingCount":3120},
  {"productId":"E-6","productName":"Vivobook 16","brandName":"Asus","category":"Laptops","description":"Everyday laptop","price":649,"currency":"USD","processor":"Ryzen 7","memory":"16GB","releaseDate":"2023-05-20","averageRating":4.1,"ratingCount":410},
  {"productId":"E-7","productName":"iPad Air","brandName":"Apple","category":"Tablets","description":"M2 tablet","currency":"USD","processor":"Apple M2","memory":"8GB","releaseDate":"2024-05-15","averageRating":4.7,"ratingCount":940}
]`
