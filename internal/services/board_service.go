package services

import (
	"context"
	"fmt"

	"radarcontacts/internal/models"
	"radarcontacts/pkg/logger"
	"radarcontacts/pkg/monday"
)

type boardService struct {
	board          BoardClient
	lookups        LookupService
	defaultBoardID string
}

// NewBoardService wires the Monday.com board import on top of the lookup flow.
func NewBoardService(board BoardClient, lookups LookupService, defaultBoardID string) BoardService {
	return &boardService{
		board:          board,
		lookups:        lookups,
		defaultBoardID: defaultBoardID,
	}
}

func (s *boardService) ImportBoard(ctx context.Context, req *models.BoardImportRequest, requestedBy string) (*models.LookupBatch, error) {
	boardID := req.BoardID
	if boardID == "" {
		boardID = s.defaultBoardID
	}
	if boardID == "" {
		return nil, fmt.Errorf("board fetch failed: no board id configured")
	}

	items, err := s.board.GetBoardItems(ctx, boardID, req.Limit)
	if err != nil {
		return nil, err
	}

	addresses := make([]string, 0, len(items))
	for _, item := range items {
		address := monday.ExtractAddress(item)
		if address == "" {
			logger.GlobalLogger.Debugf("Skipping board item %s: no address found", item.ID)
			continue
		}
		addresses = append(addresses, address)
	}
	if len(addresses) == 0 {
		return nil, fmt.Errorf("board fetch failed: board %s has no address rows", boardID)
	}

	logger.GlobalLogger.Printf("Importing %d addresses from board %s", len(addresses), boardID)
	return s.lookups.LookupAddresses(ctx, addresses, requestedBy)
}
