package feed

import (
	"context"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/suite"
	"google.golang.org/api/iterator"

	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
)

type WriterTestSuite struct {
	suite.Suite
	client     *firestore.Client
	collection string
}

func (s *WriterTestSuite) SetupSuite() {
	client, err := firestore.NewClient(context.Background(), "dashboard-test")
	if err != nil {
		s.T().Fatalf("create firestore client with error: %s", err)
	}
	s.client = client
	s.collection = "test-data"
}

func (s *WriterTestSuite) SetupTest() {
	s.clean()
}

func (s *WriterTestSuite) TearDownSuite() {
	s.clean()
	_ = s.client.Close()
}

func (s *WriterTestSuite) clean() {
	ctx := context.Background()
	it := s.client.Collection(s.collection).Documents(ctx)
	defer it.Stop()
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			return
		}
		if err != nil {
			s.T().Fatal(err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			s.T().Fatal(err)
		}
	}
}

func (s *WriterTestSuite) TestLatestWithoutObservation() {
	w := NewObservationWriter(s.client, s.collection)

	o, err := w.Latest(context.Background(), "Bayern")
	s.Equal(ErrNoObservation, err)
	s.Nil(o)
}

func (s *WriterTestSuite) TestReplaceAndLatest() {
	w := NewObservationWriter(s.client, s.collection)
	ctx := context.Background()
	day := time.Date(2020, 4, 12, 0, 0, 0, 0, time.UTC)

	s.NoError(w.Replace(ctx, []schema.Observation{
		{Region: "Bayern", Timestamp: day, Cases: 100},
		{Region: "Bayern", Timestamp: day.AddDate(0, 0, 1), Cases: 120, Delta: 20},
		{Region: "Berlin", Timestamp: day, Cases: 30},
	}))

	// same day again replaces the document
	s.NoError(w.Replace(ctx, []schema.Observation{
		{Region: "Bayern", Timestamp: day.AddDate(0, 0, 1), Cases: 125, Delta: 25},
	}))

	o, err := w.Latest(ctx, "Bayern")
	s.NoError(err)
	s.Equal(125.0, o.Cases)
	s.Equal(25.0, o.Delta)
	s.True(day.AddDate(0, 0, 1).Equal(o.Timestamp))

	docs, err := s.client.Collection(s.collection).Documents(ctx).GetAll()
	s.NoError(err)
	s.Len(docs, 3)
}

func (s *WriterTestSuite) TestRecentQueryOrder() {
	w := NewObservationWriter(s.client, s.collection)
	ctx := context.Background()
	day := time.Date(2020, 4, 12, 0, 0, 0, 0, time.UTC)

	var records []schema.Observation
	for i := 0; i < 5; i++ {
		records = append(records, schema.Observation{Region: "Hessen", Timestamp: day.AddDate(0, 0, i), Cases: float64(i)})
	}
	s.NoError(w.Replace(ctx, records))

	l := NewListener(s.client, s.collection, 2, 0)
	observations, err := readDocuments(l.recentQuery().Documents(ctx))
	s.NoError(err)
	s.Len(observations, 2)
	s.Equal(4.0, observations[0].Cases)
	s.Equal(3.0, observations[1].Cases)
}

func TestWriterTestSuite(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	suite.Run(t, new(WriterTestSuite))
}
