package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
)

const (
	MerchantIDKey    contextKey = "merchantID"
	MerchantIDHeader string     = "X-Merchant-ID"
)

// MerchantID extracts the calling merchant's identity from the
// X-Merchant-ID header. Requests without a valid merchant id are
// rejected before reaching any handler.
func MerchantID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(MerchantIDHeader)

		merchantID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || merchantID <= 0 {
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, map[string]interface{}{
				"error":   ErrorCodeUnauthorized,
				"message": ErrorMessageMissingMerchant,
			})
			return
		}

		ctx := context.WithValue(r.Context(), MerchantIDKey, merchantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetMerchantID returns the merchant id placed in the context by
// MerchantID, or 0 when the middleware did not run.
func GetMerchantID(ctx context.Context) int64 {
	if merchantID, ok := ctx.Value(MerchantIDKey).(int64); ok {
		return merchantID
	}
	return 0
}
