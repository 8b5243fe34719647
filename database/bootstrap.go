// database/bootstrap.go
package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskplanner/config"
	"taskplanner/entities"
)

const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
)

// Conn owns the store handles for the life of the process. At most one of
// Mongo/SQL is set; both nil means storage is unavailable.
type Conn struct {
	Driver  string
	Mongo   *mongo.Client
	MongoDB *mongo.Database
	SQL     *gorm.DB
	// Err records why no handle could be opened.
	Err error
}

// Connect opens the configured store. It never fails hard: problems are
// logged and kept on Conn.Err so the service can still start and answer 503.
func Connect(ctx context.Context, cfg config.AppConfig) *Conn {
	c := &Conn{Driver: cfg.StoreDriver}
	switch cfg.StoreDriver {
	case DriverSQLite:
		db, err := OpenSQLite(cfg.DBPath)
		if err != nil {
			c.Err = err
			break
		}
		c.SQL = db
		log.Printf("[db] sqlite ready at %s", cfg.DBPath)
	case DriverMongo:
		client, db, err := OpenMongo(ctx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			c.Err = err
			break
		}
		c.Mongo, c.MongoDB = client, db
		log.Printf("[db] connected to MongoDB database %q and ping successful", cfg.MongoDBName)
	default:
		c.Err = fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	if c.Err != nil {
		log.Printf("[db] ERROR: storage unavailable: %v", c.Err)
	}
	return c
}

func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.AutoMigrate(&entities.PlanRecord{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

func OpenMongo(ctx context.Context, uri, name string) (*mongo.Client, *mongo.Database, error) {
	if uri == "" || name == "" {
		return nil, nil, errors.New("MONGO_URI or MONGO_DB_NAME is missing")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, client.Database(name), nil
}

// Ready reports whether a store handle exists.
func (c *Conn) Ready() bool { return c != nil && (c.Mongo != nil || c.SQL != nil) }

// Ping checks the store is reachable.
func (c *Conn) Ping(ctx context.Context) error {
	switch {
	case c == nil:
		return errors.New("no database connection")
	case c.Mongo != nil:
		return c.Mongo.Ping(ctx, readpref.Primary())
	case c.SQL != nil:
		sqlDB, err := c.SQL.DB()
		if err != nil {
			return fmt.Errorf("db.DB(): %w", err)
		}
		return sqlDB.PingContext(ctx)
	case c.Err != nil:
		return c.Err
	default:
		return errors.New("database is not initialized")
	}
}

// Close releases whichever handle is open. Safe to call on an unready Conn.
func (c *Conn) Close(ctx context.Context) error {
	if c == nil {
		return nil
	}
	switch {
	case c.Mongo != nil:
		if err := c.Mongo.Disconnect(ctx); err != nil {
			return fmt.Errorf("disconnect mongo: %w", err)
		}
		log.Printf("[db] MongoDB connection closed")
	case c.SQL != nil:
		sqlDB, err := c.SQL.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("close sqlite: %w", err)
		}
		log.Printf("[db] sqlite closed")
	}
	return nil
}
