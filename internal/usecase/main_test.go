package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/papaslocas/sales-api/internal/logging"
)

func TestMain(m *testing.M) {
	logging.Init("usecase-test", filepath.Join(os.TempDir(), "sales-api-test.log"))
	os.Exit(m.Run())
}
