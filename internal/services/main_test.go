package services

import (
	"os"
	"testing"

	"radarcontacts/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	os.Exit(m.Run())
}
