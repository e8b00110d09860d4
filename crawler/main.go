package main

import (
	"context"
	"flag"
	"fmt"
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
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/fabianhinz/rkicasesdashboard-sub000/external/rki"
	"github.com/fabianhinz/rkicasesdashboard-sub000/feed"
	"github.com/fabianhinz/rkicasesdashboard-sub000/utils"
)

const (
	logPrefix      = "cron"
	defaultTimeout = 60 * time.Second
)

type Cron interface {
	Run()
}

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
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         viper.GetString("sentry.dsn"),
		Environment: viper.GetString("sentry.environment"),
		Dist:        viper.GetString("sentry.dist"),
	}); err != nil {
		log.Panicf("Sentry initialization failed: %v\n", err)
	}
	defer sentry.Flush(2 * time.Second)

	initialCtx, cancelInitialization := context.WithTimeout(context.Background(), defaultTimeout)
	firestoreClient, err := feed.NewFirestoreClient(initialCtx, feed.Credentials{
		ProjectID: viper.GetString("firebase.project_id"),
		Base64:    viper.GetString("firebase.credentials_base64"),
		File:      viper.GetString("firebase.credentials_file"),
	})
	cancelInitialization()
	if nil != err {
		log.Panicf("create firestore client with error: %s", err)
	}
	defer firestoreClient.Close()

	crawler := newCrawler(
		feed.NewObservationWriter(firestoreClient, viper.GetString("firestore.collection")),
		rki.New(viper.GetString("rki.county_url"), viper.GetString("rki.state_url")),
		utils.GetLocation(viper.GetString("dashboard.timezone")),
	)

	schedule := viper.GetString("cron.crawler")
	if schedule == "" {
		crawler.Run()
		return
	}

	c := cron.New()
	if _, err := c.AddJob(schedule, crawler); err != nil {
		log.Panicf("schedule crawler with error: %s", err)
	}
	c.Start()
	log.WithFields(log.Fields{"prefix": logPrefix, "schedule": schedule}).Info("crawler scheduled")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	log.WithField("prefix", logPrefix).Info("stopping crawler")
	<-c.Stop().Done()
}
