package monday

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"radarcontacts/pkg/logger"
)

// boardQuery pulls the first page of items with their column values. The
// board id arrives as a variable so the query itself stays static.
const boardQuery = `
query ($board_id: [ID!], $limit: Int) {
    boards(ids: $board_id) {
        name
        items_page(limit: $limit) {
            items {
                id
                name
                column_values {
                    id
                    text
                    value
                }
            }
        }
    }
}`

// Client talks to the Monday.com GraphQL API.
type Client struct {
	apiURL     string
	token      string
	httpClient *http.Client
}

// NewClient creates a new Monday.com client.
func NewClient(apiURL, token string) *Client {
	return &Client{
		apiURL: apiURL,
		token:  token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BoardItem is one row of a board.
type BoardItem struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	ColumnValues []ColumnValue `json:"column_values"`
}

// ColumnValue is one cell of a board row.
type ColumnValue struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Value string `json:"value"`
}

type boardResponse struct {
	Data struct {
		Boards []struct {
			Name      string `json:"name"`
			ItemsPage struct {
				Items []BoardItem `json:"items"`
			} `json:"items_page"`
		} `json:"boards"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// GetBoardItems fetches up to limit items from the given board.
func (c *Client) GetBoardItems(ctx context.Context, boardID string, limit int) ([]BoardItem, error) {
	if limit <= 0 {
		limit = 10
	}

	payload := map[string]interface{}{
		"query": boardQuery,
		"variables": map[string]interface{}{
			"board_id": []string{boardID},
			"limit":    limit,
		},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal board query: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create board request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send board request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read board response body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		logger.GlobalLogger.Errorf("Board fetch failed: board_id=%s, status=%d, response=%s", boardID, resp.StatusCode, string(body))
		return nil, fmt.Errorf("board fetch failed: status %d", resp.StatusCode)
	}

	var decoded boardResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode board response: %v", err)
	}
	if len(decoded.Errors) > 0 {
		return nil, fmt.Errorf("board query error: %s", decoded.Errors[0].Message)
	}
	if len(decoded.Data.Boards) == 0 {
		return nil, fmt.Errorf("board %s not found", boardID)
	}

	items := decoded.Data.Boards[0].ItemsPage.Items
	logger.GlobalLogger.Printf("Fetched %d items from board %s", len(items), boardID)
	return items, nil
}
