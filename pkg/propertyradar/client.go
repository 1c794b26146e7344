package propertyradar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"radarcontacts/pkg/metrics"
)

const apiVersion = "v1"

// Client manages PropertyRadar API authentication and requests.
type Client struct {
	token      string
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a new PropertyRadar client.
func NewClient(baseURL, token string) *Client {
	return &Client{
		token:     token,
		baseURL:   baseURL,
		userAgent: "radarcontacts/1.0",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// flexFloat decodes a JSON number that the upstream sometimes quotes.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	if len(data) > 1 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("failed to parse cost value %q: %v", s, err)
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// do issues an authenticated request against the API. The purchase flag is
// carried in the query string, never in the body. The endpoint label keeps
// metric cardinality bounded while paths carry opaque keys.
func (c *Client) do(ctx context.Context, method, path, endpoint string, purchase int, payload interface{}) (int, []byte, error) {
	query := url.Values{}
	query.Set("Purchase", strconv.Itoa(purchase))
	requestURL := fmt.Sprintf("%s/%s%s?%s", c.baseURL, apiVersion, path, query.Encode())

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request body: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create %s request: %v", endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		return 0, nil, fmt.Errorf("failed to send %s request: %v", endpoint, err)
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read %s response body: %v", endpoint, err)
	}
	return resp.StatusCode, respBody, nil
}

// decodeBody unmarshals a response body into an untyped JSON value for the
// recursive contact extraction.
func decodeBody(body []byte) (interface{}, error) {
	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}
	return data, nil
}
