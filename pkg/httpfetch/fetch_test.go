package httpfetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchBytes(t *testing.T) {
	ctx := context.Background()

	t.Run("200応答の本文を返すこと", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("image-bytes"))
		}))
		defer srv.Close()

		got, err := New(5 * time.Second).FetchBytes(ctx, srv.URL)

		require.NoError(t, err)
		assert.Equal(t, []byte("image-bytes"), got)
	})

	t.Run("200以外の応答はエラーになること", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := New(5 * time.Second).FetchBytes(ctx, srv.URL)
		assert.Error(t, err)
	})

	t.Run("接続できない場合はエラーになること", func(t *testing.T) {
		_, err := New(time.Second).FetchBytes(ctx, "http://127.0.0.1:1/unreachable")
		assert.Error(t, err)
	})
}
