package spdb

import (
	"context"
	"net/url"
	"os"
	"time"

	"github.com/DMaendlen/netmeasure/common"
	"github.com/DMaendlen/netmeasure/logger"

	json "github.com/goccy/go-json"
	"github.com/hyp3rd/ewrap"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

type SpeedtestMongo struct {
	config   *DBConfig
	Client   *mongo.Client
	Database *mongo.Database
}

//DB is host[:port] of the server
type DBConfig struct {
	Username string
	Password string
	AuthDB   string
	DB       string
}

func LoadDBConfig(path string) (*DBConfig, error) {
	cfile, err := os.Open(path)
	if err != nil {
		return nil, ewrap.Wrapf(err, "open mongo config %s", path)
	}
	defer cfile.Close()
	c := &DBConfig{}
	if err := json.NewDecoder(cfile).Decode(c); err != nil {
		return nil, ewrap.Wrapf(err, "decode mongo config %s", path)
	}
	if c.DB == "" {
		return nil, ewrap.Wrap(common.ErrInvalidConfig, "no database was selected")
	}
	return c, nil
}

func (c *DBConfig) URI() string {
	u := url.URL{Scheme: "mongodb", Host: c.DB, Path: "/"}
	if c.Username != "" && c.Password != "" {
		u.User = url.UserPassword(c.Username, c.Password)
		if c.AuthDB != "" {
			u.RawQuery = url.Values{"authSource": {c.AuthDB}}.Encode()
		}
	}
	return u.String()
}

func connectmongo(ctx context.Context, mongopath, dbname string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongopath))
	if err != nil {
		return nil, nil, ewrap.Wrap(err, "connect mongo")
	}
	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, ewrap.Wrap(err, "ping mongo")
	}
	logger.Infof("Database connected")
	return client, client.Database(dbname), nil
}

func NewMongoDB(ctx context.Context, config string, dbname string) (*SpeedtestMongo, error) {
	cfg, err := LoadDBConfig(config)
	if err != nil {
		return nil, err
	}
	c := &SpeedtestMongo{config: cfg}
	c.Client, c.Database, err = connectmongo(ctx, cfg.URI(), dbname)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (cm *SpeedtestMongo) Close(ctx context.Context) error {
	if cm.Client == nil {
		return nil
	}
	if err := cm.Client.Disconnect(ctx); err != nil {
		return ewrap.Wrap(err, "disconnect mongo")
	}
	logger.Infof("Database connection ends")
	return nil
}

// InsertAverages upserts docs keyed by (direction, timestamp) and returns how many were new.
func (cm *SpeedtestMongo) InsertAverages(ctx context.Context, collection string, docs []HourlyDoc) (int, error) {
	if cm.Database == nil {
		return 0, ewrap.New("database is nil")
	}
	col := cm.Database.Collection(collection)
	opt := options.Replace().SetUpsert(true)
	inserted := 0
	for _, doc := range docs {
		filter := bson.D{{Key: "direction", Value: doc.Direction}, {Key: "timestamp", Value: doc.Timestamp}}
		res, err := col.ReplaceOne(ctx, filter, doc, opt)
		if err != nil {
			return inserted, ewrap.Wrapf(err, "upsert %s %s", doc.Direction, common.FormatTimestamp(doc.Timestamp))
		}
		if res.UpsertedCount > 0 {
			inserted++
		}
	}
	return inserted, nil
}
