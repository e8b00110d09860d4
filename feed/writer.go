package feed

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"

	"github.com/fabianhinz/rkicasesdashboard-sub000/consts"
	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
)

var ErrNoObservation = fmt.Errorf("no observation stored")

// ObservationWriter - stores observations into the feed collection
type ObservationWriter interface {
	Latest(ctx context.Context, region string) (*schema.Observation, error)
	Replace(ctx context.Context, records []schema.Observation) error
}

type firestoreWriter struct {
	client     *firestore.Client
	collection string
}

// NewObservationWriter - return a writer on the given collection
func NewObservationWriter(client *firestore.Client, collection string) ObservationWriter {
	if collection == "" {
		collection = DefaultCollection
	}
	return &firestoreWriter{
		client:     client,
		collection: collection,
	}
}

// DocumentID - one document per region and day
func DocumentID(o schema.Observation) string {
	return fmt.Sprintf("%s_%s", consts.RegionKey(o.Region), o.Timestamp.UTC().Format("2006-01-02"))
}

// Latest returns the most recent observation of region.
func (w *firestoreWriter) Latest(ctx context.Context, region string) (*schema.Observation, error) {
	it := w.client.Collection(w.collection).
		Where("region", "==", region).
		OrderBy("timestamp", firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err == iterator.Done {
		return nil, ErrNoObservation
	}
	if err != nil {
		return nil, err
	}

	o, err := Decode(doc.Data())
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Replace upserts every record under its region and day document.
func (w *firestoreWriter) Replace(ctx context.Context, records []schema.Observation) error {
	for _, o := range records {
		id := DocumentID(o)
		if _, err := w.client.Collection(w.collection).Doc(id).Set(ctx, o); err != nil {
			log.WithFields(log.Fields{
				"prefix":   feedLogPrefix,
				"document": id,
				"error":    err,
			}).Error("store observation")
			return err
		}
	}

	log.WithField("prefix", feedLogPrefix).Infof("stored %d observations", len(records))
	return nil
}
