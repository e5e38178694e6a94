// Package wire provides dependency injection for the trid application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	cliadapter "github.com/ssg/trid/internal/adapters/cli"
	"github.com/ssg/trid/internal/adapters/random"
	"github.com/ssg/trid/internal/adapters/sqlite"
	"github.com/ssg/trid/internal/app"
	"github.com/ssg/trid/internal/config"
	"github.com/ssg/trid/internal/db"
	"github.com/ssg/trid/internal/logger"
	"github.com/ssg/trid/internal/ports/secondary"
)

// Options are the process-wide settings resolved from flags and config.
type Options struct {
	Config   *config.Config
	LogLevel string // overrides Config.LogLevel when set
}

var (
	opts     Options
	log      zerolog.Logger
	database *sql.DB
	dbErr    error
	logOnce  sync.Once
	dbOnce   sync.Once
)

// Init records options for later lazy initialization. Calling it again
// closes any open ledger and drops the cached logger.
func Init(o Options) {
	Close()
	logOnce = sync.Once{}

	if o.Config == nil {
		o.Config = config.Default()
	}
	opts = o
	if o.Config.NoColor {
		color.NoColor = true
	}
}

// Config returns the active configuration.
func Config() *config.Config {
	if opts.Config == nil {
		return config.Default()
	}
	return opts.Config
}

// Context returns a background context carrying the configured logger.
func Context() context.Context {
	logOnce.Do(initLogger)
	return logger.WithLogger(context.Background(), log)
}

func initLogger() {
	level := opts.LogLevel
	if level == "" && opts.Config != nil {
		level = opts.Config.LogLevel
	}
	pretty := opts.Config != nil && opts.Config.LogPretty
	log = logger.New(logger.Config{Level: level, Pretty: pretty})
}

// ledgerRepository opens the ledger database on first use.
func ledgerRepository() (secondary.LedgerRepository, error) {
	dbOnce.Do(func() {
		path := ""
		if opts.Config != nil {
			path = opts.Config.LedgerPath
		}
		if path == "" {
			path, dbErr = db.DefaultPath()
			if dbErr != nil {
				return
			}
		}
		database, dbErr = db.Open(path)
	})
	if dbErr != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", dbErr)
	}
	return sqlite.NewLedgerRepository(database), nil
}

// Close releases the ledger database if it was opened. The next ledger
// access opens it again.
func Close() error {
	var err error
	if database != nil {
		err = database.Close()
	}
	database, dbErr = nil, nil
	dbOnce = sync.Once{}
	return err
}

// GenerateAdapter returns a GenerateAdapter writing to out. The ledger is
// only opened when unique is set, so plain generation never touches disk.
// A non-nil seed makes the draw sequence reproducible.
func GenerateAdapter(out io.Writer, unique bool, seed *uint64) (*cliadapter.GenerateAdapter, error) {
	var source secondary.SequenceSource = random.NewSource()
	if seed != nil {
		source = random.NewSeededSource(*seed)
	}

	var repo secondary.LedgerRepository
	if unique {
		r, err := ledgerRepository()
		if err != nil {
			return nil, err
		}
		repo = r
	}

	return cliadapter.NewGenerateAdapter(app.NewGeneratorService(source, repo), out), nil
}

// LedgerAdapter returns a LedgerAdapter writing to out.
func LedgerAdapter(out io.Writer) (*cliadapter.LedgerAdapter, error) {
	repo, err := ledgerRepository()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewLedgerAdapter(app.NewLedgerService(repo), out), nil
}

// ValidateAdapter returns a ValidateAdapter writing to out.
func ValidateAdapter(out io.Writer, quiet bool) *cliadapter.ValidateAdapter {
	return cliadapter.NewValidateAdapter(out, quiet)
}
