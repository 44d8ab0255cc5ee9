package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Middleware)
	router.Get("/widgets/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, path := range []string{"/widgets/1", "/widgets/2"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusTeapot, rr.Code)
	}

	// Both requests collapse onto the route pattern, not the raw paths.
	count := testutil.ToFloat64(requestsTotal.WithLabelValues("GET", "/widgets/{id}", "418"))
	assert.Equal(t, float64(2), count)
}

func TestRecordAccountDeletion(t *testing.T) {
	before := testutil.ToFloat64(accountDeletionsTotal)
	postsBefore := testutil.ToFloat64(accountRowsDeletedTotal.WithLabelValues("posts"))
	commentsBefore := testutil.ToFloat64(accountRowsDeletedTotal.WithLabelValues("comments"))

	RecordAccountDeletion(2, 5)

	assert.Equal(t, before+1, testutil.ToFloat64(accountDeletionsTotal))
	assert.Equal(t, postsBefore+2, testutil.ToFloat64(accountRowsDeletedTotal.WithLabelValues("posts")))
	assert.Equal(t, commentsBefore+5, testutil.ToFloat64(accountRowsDeletedTotal.WithLabelValues("comments")))
}
