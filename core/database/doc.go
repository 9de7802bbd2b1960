// Package database provides the GORM database connection layer.
//
// It supports two drivers:
//   - mysql: the production driver, with connection pooling and DSN-level timeouts
//   - sqlite: used for local setups and tests (":memory:" is supported)
//
// The driver is selected through Config.Driver; the rest of the application only
// ever sees a *gorm.DB and stays driver-agnostic.
package database
