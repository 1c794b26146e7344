package propertyradar

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"radarcontacts/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchProperties(t *testing.T) {
	var captured struct {
		path     string
		purchase string
		auth     string
		body     searchRequest
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.purchase = r.URL.Query().Get("Purchase")
		captured.auth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &captured.body))

		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"results":[{"RadarID":"PR123","Address":"400 LAS COLINAS BLVD E"}],"totalCost":"1.25","resultCount":1}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	comp := models.AddressComponents{
		Street: "400 LAS COLINAS BLVD E",
		City:   "IRVING",
		State:  "TX",
		Zip:    "75039",
	}

	results, err := client.SearchProperties(context.Background(), comp)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "PR123", results[0].RadarID())

	assert.Equal(t, "/v1/properties", captured.path)
	assert.Equal(t, "1", captured.purchase)
	assert.Equal(t, "Bearer test-token", captured.auth)

	require.Len(t, captured.body.Criteria, 4)
	assert.Equal(t, criterion{Name: "Address", Value: []string{"400 LAS COLINAS BLVD E"}}, captured.body.Criteria[0])
	assert.Equal(t, criterion{Name: "City", Value: []string{"IRVING"}}, captured.body.Criteria[1])
	assert.Equal(t, criterion{Name: "State", Value: []string{"TX"}}, captured.body.Criteria[2])
	assert.Equal(t, criterion{Name: "ZipFive", Value: []string{"75039"}}, captured.body.Criteria[3])
}

func TestSearchPropertiesLowercaseCriterionKeys(t *testing.T) {
	data, err := json.Marshal(searchRequest{Criteria: []criterion{{Name: "State", Value: []string{"TX"}}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Criteria":[{"name":"State","value":["TX"]}]}`, string(data))
}

func TestSearchPropertiesEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"results":[],"totalCost":0,"resultCount":0}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	results, err := client.SearchProperties(context.Background(), models.AddressComponents{})

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchPropertiesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, `{"error":"bad token"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	_, err := client.SearchProperties(context.Background(), models.AddressComponents{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "property search failed")
}

func TestGetOwners(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/properties/PR123/persons", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("Purchase"))
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"results":[
			{"PersonKey":"P1","EntityName":"JOHN SMITH","OwnershipRole":"Owner","PersonType":"Individual"},
			{"PersonKey":"P2","Name":"ACME LLC"},
			{"PersonKey":12345}
		],"totalCost":0,"resultCount":3}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	owners, err := client.GetOwners(context.Background(), "PR123")
	require.NoError(t, err)

	require.Len(t, owners, 3)
	assert.Equal(t, models.OwnerInfo{PersonKey: "P1", Name: "JOHN SMITH", OwnershipRole: "Owner", PersonType: "Individual"}, owners[0])

	// EntityName missing falls back to Name, role and type default.
	assert.Equal(t, "ACME LLC", owners[1].Name)
	assert.Equal(t, "Unknown", owners[1].OwnershipRole)
	assert.Equal(t, "Unknown", owners[1].PersonType)

	// Numeric person key is stringified, missing name gets the placeholder.
	assert.Equal(t, "12345", owners[2].PersonKey)
	assert.Equal(t, "Unknown Owner", owners[2].Name)
}

func TestGetOwnersUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"no such property"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	_, err := client.GetOwners(context.Background(), "PRMISSING")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "owners lookup failed")
}

func TestFlexFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"plain number", `1.25`, 1.25},
		{"quoted number", `"1.25"`, 1.25},
		{"quoted empty", `""`, 0},
		{"zero", `0`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f flexFloat
			require.NoError(t, f.UnmarshalJSON([]byte(tt.input)))
			assert.Equal(t, tt.expected, float64(f))
		})
	}

	var f flexFloat
	assert.Error(t, f.UnmarshalJSON([]byte(`"not-a-number"`)))
}
