package feed

import (
	"context"
	"encoding/base64"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// Credentials - where the service account of the firebase project comes from.
// The base64 encoded json wins over the file; with neither, application
// default credentials or the emulator are used.
type Credentials struct {
	ProjectID string
	Base64    string
	File      string
}

func (c Credentials) options() ([]option.ClientOption, string, error) {
	switch {
	case c.Base64 != "":
		creds, err := base64.StdEncoding.DecodeString(c.Base64)
		if err != nil {
			return nil, "", fmt.Errorf("decode firebase credentials: %w", err)
		}
		return []option.ClientOption{option.WithCredentialsJSON(creds)}, "base64", nil
	case c.File != "":
		return []option.ClientOption{option.WithCredentialsFile(c.File)}, "file", nil
	default:
		return nil, "default", nil
	}
}

// NewFirestoreClient initializes the firebase app and returns its firestore
// client.
func NewFirestoreClient(ctx context.Context, c Credentials) (*firestore.Client, error) {
	opts, source, err := c.options()
	if err != nil {
		return nil, err
	}

	var conf *firebase.Config
	if c.ProjectID != "" {
		conf = &firebase.Config{ProjectID: c.ProjectID}
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firestore client: %w", err)
	}

	log.WithFields(log.Fields{
		"prefix":      feedLogPrefix,
		"project":     c.ProjectID,
		"credentials": source,
	}).Info("firestore client initialized")

	return client, nil
}
