package migrations

import (
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/pkg/errors"
)

// Do applies every pending migration from path against the database behind
// connString. The postgres database driver and the file source driver must
// be registered by the caller's blank imports.
func Do(connString, path string, logger *slog.Logger) error {
	m, err := migrate.New("file://"+path, connString)
	if err != nil {
		return errors.Wrap(err, "create migrator")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Error(srcErr.Error())
		}
		if dbErr != nil {
			logger.Error(dbErr.Error())
		}
	}()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Debug("migrations: no change")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	logger.Debug("migrations applied")
	return nil
}
