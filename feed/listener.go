package feed

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
)

const (
	feedLogPrefix = "feed"

	DefaultCollection  = "data"
	DefaultRecentLimit = 32
	DefaultRetryDelay  = 10 * time.Second
)

// Consumer - receives every batch of observations read from the feed
type Consumer interface {
	PushSnapshot(records []schema.Observation)
	PushRecent(records []schema.Observation)
}

// Listener - keeps live queries on the observation collection open
type Listener struct {
	client      *firestore.Client
	collection  string
	recentLimit int
	retryDelay  time.Duration
}

// NewListener - return a listener, zero values fall back to the defaults
func NewListener(client *firestore.Client, collection string, recentLimit int, retryDelay time.Duration) *Listener {
	if collection == "" {
		collection = DefaultCollection
	}
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}

	return &Listener{
		client:      client,
		collection:  collection,
		recentLimit: recentLimit,
		retryDelay:  retryDelay,
	}
}

func (l *Listener) allQuery() firestore.Query {
	return l.client.Collection(l.collection).
		OrderBy("region", firestore.Asc).
		OrderBy("timestamp", firestore.Asc)
}

func (l *Listener) recentQuery() firestore.Query {
	return l.client.Collection(l.collection).
		OrderBy("timestamp", firestore.Desc).
		Limit(l.recentLimit)
}

// Run listens to the complete history and to the most recent records until
// ctx is cancelled. Broken listeners are restarted after the retry delay.
func (l *Listener) Run(ctx context.Context, consumer Consumer) {
	done := make(chan struct{}, 2)

	go func() {
		l.keepListening(ctx, "all", l.allQuery(), consumer.PushSnapshot)
		done <- struct{}{}
	}()
	go func() {
		l.keepListening(ctx, "recent", l.recentQuery(), consumer.PushRecent)
		done <- struct{}{}
	}()

	<-done
	<-done
}

func (l *Listener) keepListening(ctx context.Context, name string, q firestore.Query, push func([]schema.Observation)) {
	for {
		err := listen(ctx, q, push)
		if ctx.Err() != nil {
			log.WithField("prefix", feedLogPrefix).WithField("query", name).Info("listener stopped")
			return
		}

		sentry.CaptureException(err)
		log.WithFields(log.Fields{
			"prefix": feedLogPrefix,
			"query":  name,
			"error":  err,
		}).Error("listener broken, restart later")

		select {
		case <-ctx.Done():
			return
		case <-time.After(l.retryDelay):
		}
	}
}

// listen blocks until the query snapshots fail or ctx is cancelled, pushing
// every snapshot as a whole.
func listen(ctx context.Context, q firestore.Query, push func([]schema.Observation)) error {
	it := q.Snapshots(ctx)
	defer it.Stop()

	for {
		snap, err := it.Next()
		if err != nil {
			if status.Code(err) == codes.Canceled {
				return ctx.Err()
			}
			return err
		}

		records, err := readDocuments(snap.Documents)
		if err != nil {
			return err
		}
		push(records)
	}
}

func readDocuments(it *firestore.DocumentIterator) ([]schema.Observation, error) {
	defer it.Stop()

	docs := make([]map[string]interface{}, 0)
	ids := make([]string, 0)
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc.Data())
		ids = append(ids, doc.Ref.ID)
	}

	return decodeAll(ids, docs), nil
}

// decodeAll skips documents that cannot be attributed to a region and day.
func decodeAll(ids []string, docs []map[string]interface{}) []schema.Observation {
	records := make([]schema.Observation, 0, len(docs))
	for i, data := range docs {
		o, err := Decode(data)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix":   feedLogPrefix,
				"document": ids[i],
				"error":    err,
			}).Warn("skip document")
			continue
		}
		records = append(records, o)
	}
	return records
}
