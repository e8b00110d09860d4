package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
)

var (
	ErrPreferenceNotFound = fmt.Errorf("preference not found")
	ErrEmptyPreferenceKey = fmt.Errorf("empty preference key")
)

// PreferenceStore - key value storage of dashboard preferences
type PreferenceStore interface {
	// Get decodes the value stored under key into out, returns
	// ErrPreferenceNotFound when nothing is stored
	Get(ctx context.Context, key string, out interface{}) error
	// Put stores value under key, replacing any previous value
	Put(ctx context.Context, key string, value interface{}) error
}

type preferenceDocument struct {
	Key        string        `bson:"key"`
	Value      bson.RawValue `bson:"value"`
	UpdateTime int64         `bson:"update_time"`
}

func (m *mongoDB) Get(ctx context.Context, key string, out interface{}) error {
	if key == "" {
		return ErrEmptyPreferenceKey
	}

	c := m.client.Database(m.database).Collection(schema.PreferenceCollection)
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc preferenceDocument
	if err := c.FindOne(ctx, bson.M{"key": key}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrPreferenceNotFound
		}

		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"key":    key,
			"error":  err,
		}).Error("get preference")
		return err
	}

	if err := doc.Value.Unmarshal(out); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"key":    key,
			"error":  err,
		}).Error("decode preference")
		return err
	}

	return nil
}

func (m *mongoDB) Put(ctx context.Context, key string, value interface{}) error {
	if key == "" {
		return ErrEmptyPreferenceKey
	}

	c := m.client.Database(m.database).Collection(schema.PreferenceCollection)
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	_, err := c.UpdateOne(ctx, bson.M{"key": key}, bson.M{
		"$set": bson.M{
			"value":       value,
			"update_time": time.Now().UTC().Unix(),
		},
	}, opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"key":    key,
			"error":  err,
		}).Error("put preference")
		return err
	}

	log.WithFields(log.Fields{
		"prefix": mongoLogPrefix,
		"key":    key,
	}).Debug("preference stored")

	return nil
}
