package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fabianhinz/rkicasesdashboard-sub000/api"
	"github.com/fabianhinz/rkicasesdashboard-sub000/background/ranking"
	"github.com/fabianhinz/rkicasesdashboard-sub000/external/rki"
	"github.com/fabianhinz/rkicasesdashboard-sub000/feed"
	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
	"github.com/fabianhinz/rkicasesdashboard-sub000/state"
	"github.com/fabianhinz/rkicasesdashboard-sub000/store"
	"github.com/fabianhinz/rkicasesdashboard-sub000/utils"
)

const defaultRankingSchedule = "@every 30m"

var (
	server      *api.Server
	mongoClient *mongo.Client
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// .env is optional
	_ = godotenv.Load()

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("dashboard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("firestore.collection", feed.DefaultCollection)
	viper.SetDefault("feed.recent_limit", feed.DefaultRecentLimit)
	viper.SetDefault("feed.retry_delay", feed.DefaultRetryDelay)
	viper.SetDefault("dashboard.timezone", utils.DefaultTimezone)
	viper.SetDefault("dashboard.date_format", utils.DefaultDateFormat)
	viper.SetDefault("cron.ranking", defaultRankingSchedule)
}

// preferenceStore connects the preference database, preferences are kept in
// memory when no database is configured.
func preferenceStore(ctx context.Context) (store.PreferenceStore, store.Pinger) {
	conn := viper.GetString("mongo.conn")
	if conn == "" {
		log.WithField("prefix", "init").Warn("No mongo connection configured, preferences are kept in memory")
		return store.NewMemoryPreferenceStore(), nil
	}

	// initialise mongodb connections
	opts := options.Client().ApplyURI(conn)
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	client, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = client.Connect(ctx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}
	mongoClient = client

	database := viper.GetString("mongo.database")
	if err := schema.NewMongoDBIndexer(client, database).IndexAll(); err != nil {
		log.Panicf("create mongo indexes with error: %s", err)
	}

	mStore := store.NewMongoStore(client, database)
	return mStore, mStore
}

func main() {
	var configFile string

	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	utils.InitI18NBundle()

	prefs, pinger := preferenceStore(ctx)
	log.WithField("prefix", "init").Info("Initialized preference store")

	scope, scopeCloser := tally.NewRootScope(tally.ScopeOptions{
		Prefix: "rkidashboard",
	}, time.Second)

	dashboard := state.NewDashboard(state.Config{
		Location:   utils.GetLocation(viper.GetString("dashboard.timezone")),
		DateFormat: viper.GetString("dashboard.date_format"),
		Store:      prefs,
		Scope:      scope,
	})
	dashboard.LoadPreferences(ctx)
	log.WithField("prefix", "init").Info("Loaded preferences")

	firestoreClient, err := feed.NewFirestoreClient(ctx, feed.Credentials{
		ProjectID: viper.GetString("firebase.project_id"),
		Base64:    viper.GetString("firebase.credentials_base64"),
		File:      viper.GetString("firebase.credentials_file"),
	})
	if err != nil {
		log.Panic(err)
	}

	listener := feed.NewListener(
		firestoreClient,
		viper.GetString("firestore.collection"),
		viper.GetInt("feed.recent_limit"),
		viper.GetDuration("feed.retry_delay"),
	)
	listenerDone := make(chan struct{})
	go func() {
		listener.Run(ctx, dashboard)
		close(listenerDone)
	}()
	log.WithField("prefix", "init").Info("Started feed listeners")

	refresher := ranking.NewRefresher(
		rki.New(viper.GetString("rki.county_url"), viper.GetString("rki.state_url")),
		dashboard,
	)
	scheduler := cron.New()
	if _, err := scheduler.AddJob(viper.GetString("cron.ranking"), refresher); err != nil {
		log.Panic(err)
	}
	scheduler.Start()
	go refresher.Run()
	log.WithField("prefix", "init").Info("Scheduled ranking refresh")

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		cancel()
		<-scheduler.Stop().Done()
		<-listenerDone

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if server != nil {
			log.Info("Shutdown dashboard api server")
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if err := firestoreClient.Close(); err != nil {
			log.Error(err)
		}

		if mongoClient != nil {
			log.Info("Shutting down mongo store")
			_ = mongoClient.Disconnect(shutdownCtx)
		}

		_ = scopeCloser.Close()
		sentry.Flush(2 * time.Second)

		os.Exit(0)
	}()

	// Init http server
	server = api.NewServer(dashboard, pinger)
	log.WithField("prefix", "init").Info("Initialized http server")

	if err := server.Run(":" + viper.GetString("server.port")); err != http.ErrServerClosed {
		log.Fatal(err)
	}

	// wait for the shutdown routine to finish
	select {}
}
