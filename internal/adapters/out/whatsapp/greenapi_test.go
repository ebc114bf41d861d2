package whatsapp_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodibot/internal/adapters/out/whatsapp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GreenAPIClient_Send_AcceptedMessage(t *testing.T) {
	var (
		gotPath string
		gotBody map[string]string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]string{"idMessage": "msg-1"})
	}))
	defer server.Close()

	client := whatsapp.NewGreenAPIClient(whatsapp.GreenAPIConfig{
		InstanceID: "instance-1",
		Token:      "green-token",
		BaseURL:    server.URL,
	})

	err := client.Send(context.Background(), "+923001234567", "Your order is ready")
	require.NoError(t, err)

	assert.Equal(t, "/waSendText", gotPath)
	assert.Equal(t, "instance-1", gotBody["idInstance"])
	assert.Equal(t, "green-token", gotBody["apiTokenInstance"])
	assert.Equal(t, "923001234567@c.us", gotBody["chatId"])
	assert.Equal(t, "Your order is ready", gotBody["message"])
}

func Test_GreenAPIClient_Send_OKWithoutIDMessage_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	client := whatsapp.NewGreenAPIClient(whatsapp.GreenAPIConfig{
		InstanceID: "instance-1",
		Token:      "green-token",
		BaseURL:    server.URL,
	})

	err := client.Send(context.Background(), "+923001234567", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not accepted")
}

func Test_GreenAPIClient_Send_UpstreamRejection_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := whatsapp.NewGreenAPIClient(whatsapp.GreenAPIConfig{
		InstanceID: "instance-1",
		Token:      "green-token",
		BaseURL:    server.URL,
	})

	err := client.Send(context.Background(), "+923001234567", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func Test_GreenAPIClient_IsConfigured_RequiresInstanceAndToken(t *testing.T) {
	assert.False(t, whatsapp.NewGreenAPIClient(whatsapp.GreenAPIConfig{}).IsConfigured())
	assert.False(t, whatsapp.NewGreenAPIClient(whatsapp.GreenAPIConfig{InstanceID: "i"}).IsConfigured())
	assert.False(t, whatsapp.NewGreenAPIClient(whatsapp.GreenAPIConfig{Token: "t"}).IsConfigured())
	assert.True(t, whatsapp.NewGreenAPIClient(whatsapp.GreenAPIConfig{InstanceID: "i", Token: "t"}).IsConfigured())
}
