package msg91_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodibot/internal/adapters/out/msg91"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Client_Send_PostsFlowRequest(t *testing.T) {
	var (
		gotAuthKey     string
		gotContentType string
		gotBody        map[string]string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthKey = r.Header.Get("authkey")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := msg91.NewClient(msg91.Config{
		AuthKey:    "secret-key",
		TemplateID: "flow-1",
		SenderID:   "FOODIB",
		BaseURL:    server.URL,
	})

	err := client.Send(context.Background(), "+923001234567", "Your order #42 is confirmed")
	require.NoError(t, err)

	assert.Equal(t, "secret-key", gotAuthKey)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "flow-1", gotBody["flow_id"])
	assert.Equal(t, "FOODIB", gotBody["sender"])
	assert.Equal(t, "923001234567", gotBody["mobiles"])
	assert.Equal(t, "Your order #42 is confirmed", gotBody["VAR1"])
}

func Test_Client_Send_TruncatesLongMessage(t *testing.T) {
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := msg91.NewClient(msg91.Config{AuthKey: "secret-key", BaseURL: server.URL})

	long := strings.Repeat("x", 80)
	require.NoError(t, client.Send(context.Background(), "+923001234567", long))

	assert.Equal(t, strings.Repeat("x", 50), gotBody["VAR1"])
}

func Test_Client_Send_UpstreamRejection_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid authkey"))
	}))
	defer server.Close()

	client := msg91.NewClient(msg91.Config{AuthKey: "bad-key", BaseURL: server.URL})

	err := client.Send(context.Background(), "+923001234567", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid authkey")
}

func Test_Client_Send_NotConfigured_Error(t *testing.T) {
	client := msg91.NewClient(msg91.Config{})

	assert.False(t, client.IsConfigured())
	assert.Error(t, client.Send(context.Background(), "+923001234567", "hello"))
}
