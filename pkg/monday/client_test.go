package monday

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"radarcontacts/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	os.Exit(m.Run())
}

func TestGetBoardItems(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &captured))

		io.WriteString(w, `{"data":{"boards":[{"name":"Leads","items_page":{"items":[
			{"id":"1","name":"123 Main St, Jackson, MS 39201","column_values":[{"id":"status","text":"New","value":""}]}
		]}}]}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	items, err := client.GetBoardItems(context.Background(), "board-1", 25)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "123 Main St, Jackson, MS 39201", items[0].Name)

	variables := captured["variables"].(map[string]interface{})
	assert.Equal(t, []interface{}{"board-1"}, variables["board_id"])
	assert.Equal(t, 25.0, variables["limit"])
}

func TestGetBoardItemsDefaultLimit(t *testing.T) {
	var limit float64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &payload)
		limit = payload["variables"].(map[string]interface{})["limit"].(float64)
		io.WriteString(w, `{"data":{"boards":[{"name":"Leads","items_page":{"items":[]}}]}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	_, err := client.GetBoardItems(context.Background(), "board-1", 0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, limit)
}

func TestGetBoardItemsGraphQLError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"errors":[{"message":"board not accessible"}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	_, err := client.GetBoardItems(context.Background(), "board-1", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "board not accessible")
}

func TestGetBoardItemsMissingBoard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":{"boards":[]}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	_, err := client.GetBoardItems(context.Background(), "board-1", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetBoardItemsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":"bad token"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	_, err := client.GetBoardItems(context.Background(), "board-1", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
