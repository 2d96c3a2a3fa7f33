package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/messages", r.URL.Path)

		in := &SendRequest{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(in))
		require.Equal(t, "device-token", in.Token)
		require.Equal(t, "Nuevo pago en reserva", in.Title)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg-1"}`))
	}))
	defer srv.Close()

	s, err := NewService(srv.URL)
	require.NoError(t, err)

	out := &SendResponse{}
	err = s.Send(context.Background(), &SendRequest{
		Token: "device-token",
		Title: "Nuevo pago en reserva",
		Body:  "Ana ha reservado la sesión.",
	}, out)
	require.NoError(t, err)
	require.Equal(t, "msg-1", out.ID)
}

func TestSendRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	s, err := NewService(srv.URL)
	require.NoError(t, err)

	err = s.Send(context.Background(), &SendRequest{Token: "t"}, &SendResponse{})
	require.Error(t, err)

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	require.Equal(t, http.StatusInternalServerError, remoteErr.StatusCode)
}
