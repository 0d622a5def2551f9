package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spendsense/backend/internal/httputil"
	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	tests := []struct {
		handler gin.HandlerFunc
		allow   string
	}{
		{httputil.OptionsGet, "OPTIONS, GET"},
		{httputil.OptionsGetPost, "OPTIONS, GET, POST"},
		{httputil.OptionsGetPut, "OPTIONS, GET, PUT"},
		{httputil.OptionsPost, "OPTIONS, POST"},
	}

	for _, tt := range tests {
		t.Run(tt.allow, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, r := gin.CreateTestContext(w)
			r.OPTIONS("/", tt.handler)

			req, _ := http.NewRequest(http.MethodOptions, "/", nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.allow, w.Header().Get("allow"))
		})
	}
}
