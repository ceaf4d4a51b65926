package repomanager

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tokenkeeper/internal/logging"
	"github.com/pressly/goose/v3"
)

// gooseLogger sends goose's Printf-style output to the structured logger.
// Fatalf is logged as an error; goose returns the error to RunMigrations
// anyway.
type gooseLogger struct {
	ctx context.Context
	log logging.Logger
}

var _ goose.Logger = gooseLogger{}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
}
