package http

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/papaslocas/sales-api/internal/logging"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	// keep test logs out of the repo tree
	logging.Init("test", filepath.Join(os.TempDir(), "sales-api-test.log"))
	os.Exit(m.Run())
}
