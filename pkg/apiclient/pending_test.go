package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingCompletes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":5,"name":"Expo"}`))
	}))
	defer server.Close()

	c := newTestClient(t, Config{BaseURL: server.URL})
	call, err := Build[offer](NewBuilder(stocksOp).Path("offer_id", 5))
	require.NoError(t, err)

	p := Start(context.Background(), c, call)
	got, err := p.Wait()
	require.NoError(t, err)
	assert.Equal(t, 5, got.ID)
	assert.False(t, p.Canceled())

	p.Cancel()
	assert.False(t, p.Canceled())
}

func TestPendingCancel(t *testing.T) {
	entered := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-r.Context().Done()
	}))
	defer server.Close()

	c := newTestClient(t, Config{BaseURL: server.URL})
	call, err := Build[offer](NewBuilder(stocksOp).Path("offer_id", 5))
	require.NoError(t, err)

	p := Start(context.Background(), c, call)
	<-entered
	p.Cancel()

	select {
	case <-p.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("call was not aborted")
	}

	_, err = p.Wait()
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.True(t, p.Canceled())
}
