package database

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"

	"housemax/internal/core/config"
	applog "housemax/internal/core/logger"
)

var ErrUnsupportedDriver = errors.New("unsupported db driver")

type Opts struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	LogLevel           string
	// Log receives gorm's slow-query and error output. Nil keeps gorm's stdout logger.
	Log *zap.Logger
}

func NewGorm(o Opts) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch o.Driver {
	case "postgres":
		dial = postgres.Open(o.DSN)
	case "mysql":
		dsn := normalizeMySQLDSN(o.DSN, o.Username, o.Password)
		if o.Log != nil {
			o.Log.Debug("mysql dsn", zap.String("dsn", MaskDSN(dsn)))
		}
		dial = mysql.Open(dsn)
	case "sqlite":
		dial = sqlite.Open(o.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, o.Driver)
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger:         gormLogger(o.Log, o.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if o.Driver == "sqlite" {
		// one connection keeps ":memory:" databases alive and avoids SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	} else {
		sqlDB.SetMaxOpenConns(o.MaxOpenConns)
		sqlDB.SetMaxIdleConns(o.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Duration(o.ConnMaxLifetimeMin) * time.Minute)
	}
	db = db.
		Session(&gorm.Session{
			PrepareStmt:            true,
			CreateBatchSize:        200,
			SkipDefaultTransaction: true,
		})
	return db, nil
}

// Close releases the underlying pool. Safe to call with a nil db.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func gormLogger(l *zap.Logger, level string) logger.Interface {
	lvl := logger.Warn
	switch level {
	case "silent":
		lvl = logger.Silent
	case "error":
		lvl = logger.Error
	case "info":
		lvl = logger.Info
	}
	if l == nil {
		return logger.Default.LogMode(lvl)
	}
	std, err := applog.ToStdLogger(l.Named("gorm"), zapcore.WarnLevel)
	if err != nil {
		return logger.Default.LogMode(lvl)
	}
	return logger.New(std, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  lvl,
		IgnoreRecordNotFoundError: true,
	})
}

// MaskDSN hides the password part of a user:pass@host DSN or URL.
func MaskDSN(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	if at <= 0 {
		return dsn
	}
	head := dsn[:at]
	start := strings.Index(head, "://") + 3
	if start < 3 {
		start = 0
	}
	colon := strings.Index(head[start:], ":")
	if colon < 0 {
		return dsn
	}
	return head[:start+colon+1] + "****" + dsn[at:]
}

// normalizeMySQLDSN rewrites mysql:// and jdbc:mysql:// URLs into go-sql-driver form.
// Native user:pass@tcp(...) DSNs are returned untouched.
func normalizeMySQLDSN(input, userOverride, passOverride string) string {
	in := strings.TrimPrefix(strings.TrimSpace(input), "jdbc:")
	if !strings.HasPrefix(in, "mysql://") {
		return in
	}
	u, err := url.Parse(in)
	if err != nil {
		return in
	}

	var user, pass string
	if u.User != nil {
		user = u.User.Username()
		pass, _ = u.User.Password()
	}
	q := u.Query()
	for key, dst := range map[string]*string{"user": &user, "password": &pass} {
		if v := q.Get(key); v != "" {
			*dst = v
		}
		q.Del(key)
	}
	if userOverride != "" {
		user = userOverride
	}
	if passOverride != "" {
		pass = passOverride
	}

	// JDBC-only parameters the go driver rejects
	if ce := q.Get("characterEncoding"); ce != "" && q.Get("charset") == "" {
		q.Set("charset", ce)
	}
	for _, k := range []string{"characterEncoding", "useUnicode", "zeroDateTimeBehavior"} {
		q.Del(k)
	}
	if v := strings.ToLower(q.Get("useSSL")); v != "" {
		switch v {
		case "true", "1":
			q.Set("tls", "true")
		case "skip-verify", "preferred":
			q.Set("tls", v)
		default:
			q.Set("tls", "false")
		}
		q.Del("useSSL")
	}
	if tz := q.Get("serverTimezone"); tz != "" {
		q.Set("loc", tz)
		q.Del("serverTimezone")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "true")
	}
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}

	cred := user
	if pass != "" {
		cred += ":" + pass
	}
	if cred != "" {
		cred += "@"
	}
	dsn := fmt.Sprintf("%stcp(%s)/%s", cred, u.Host, strings.TrimPrefix(u.Path, "/"))
	if enc := q.Encode(); enc != "" {
		dsn += "?" + enc
	}
	return dsn
}

// FromConfig maps the db config section onto Opts.
func FromConfig(c config.DB, l *zap.Logger) Opts {
	return Opts{
		Driver:             c.Driver,
		DSN:                c.DSN,
		Username:           c.Username,
		Password:           c.Password,
		MaxOpenConns:       c.MaxOpenConns,
		MaxIdleConns:       c.MaxIdleConns,
		ConnMaxLifetimeMin: c.ConnMaxLifetimeMin,
		LogLevel:           c.LogLevel,
		Log:                l,
	}
}
