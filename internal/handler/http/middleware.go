package http

import (
	"mime"
	"net/http"

	apperrors "github.com/utafrali/storefront/pkg/errors"
	"github.com/utafrali/storefront/pkg/httputil"
)

// ContentTypeJSON rejects request bodies that are not declared as JSON. A
// missing Content-Type is accepted.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hasBody := r.ContentLength > 0 || r.Method == http.MethodPost || r.Method == http.MethodPut
		if ct := r.Header.Get("Content-Type"); hasBody && ct != "" {
			if mt, _, err := mime.ParseMediaType(ct); err != nil || mt != "application/json" {
				httputil.WriteError(w, r, apperrors.UnsupportedMediaType(ct), nil)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
