package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalserver "github.com/agrosense/croprec-server/internal/server"
)

// recordingLayer wraps PlainListener and captures the bound listener so tests
// can reach a server started on an ephemeral port.
type recordingLayer struct {
	inner    *internalserver.PlainListener
	listener net.Listener
}

func (l *recordingLayer) Listen(protocol, addr string) (net.Listener, error) {
	listener, err := l.inner.Listen(protocol, addr)
	if err != nil {
		return nil, err
	}
	l.listener = listener
	return listener, nil
}

func TestHTTPServer_Address(t *testing.T) {
	s := NewHTTPServer(http.NewServeMux(), "127.0.0.1:8080")
	assert.Equal(t, "127.0.0.1:8080", s.Address())
}

func TestHTTPServer_StartAndStop(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	})

	s := NewHTTPServer(mux, "127.0.0.1:0")
	layer := &recordingLayer{inner: internalserver.NewPlainListener()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start(layer)
	}()

	require.Eventually(t, func() bool {
		return layer.listener != nil
	}, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + layer.listener.Addr().String() + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop in time")
	}
}

func TestHTTPServer_Start_ListenError(t *testing.T) {
	s := NewHTTPServer(http.NewServeMux(), "256.256.256.256:99999")

	err := s.Start(internalserver.NewPlainListener())
	require.Error(t, err)
}
