package main

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/fabianhinz/rkicasesdashboard-sub000/external/rki"
	"github.com/fabianhinz/rkicasesdashboard-sub000/feed"
	"github.com/fabianhinz/rkicasesdashboard-sub000/mocks"
	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
)

var berlin, _ = time.LoadLocation("Europe/Berlin")

// published for April 12th, midnight in Berlin
var update = time.Date(2020, 4, 11, 22, 0, 0, 0, time.UTC)
var day = time.Date(2020, 4, 12, 0, 0, 0, 0, time.UTC)

func TestReportDay(t *testing.T) {
	assert.Equal(t, day, reportDay(update, berlin))
	assert.Equal(t, day.AddDate(0, 0, -1), reportDay(update, time.UTC))
}

func TestCrawl(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	source := mocks.NewMockRKI(ctl)
	source.EXPECT().States(gomock.Any()).Return([]rki.StateFigures{
		{Region: "Bayern", Cases: 120, Deaths: 3, Rate: 10.5, UpdateTime: update},
		{Region: "Berlin", Cases: 50, Deaths: 1, Rate: 13.2, UpdateTime: update},
		{Region: "Hessen", Cases: 30, Deaths: 0, Rate: 4.1, UpdateTime: update},
		{Region: "Bremen", Cases: 9, Deaths: 0, Rate: 1.3, UpdateTime: update},
	}, nil).Times(1)
	source.EXPECT().CountyRankings(gomock.Any()).Return(schema.CountyRankings{
		"Bayern": {{County: "Tirschenreuth", Region: "Bayern", Rate: 310.2}},
	}, nil).Times(1)

	writer := mocks.NewMockObservationWriter(ctl)
	// earlier day
	writer.EXPECT().Latest(gomock.Any(), "Bayern").Return(&schema.Observation{
		Region: "Bayern", Timestamp: day.AddDate(0, 0, -1), Cases: 100, Delta: 5,
	}, nil)
	// same day crawled before
	writer.EXPECT().Latest(gomock.Any(), "Berlin").Return(&schema.Observation{
		Region: "Berlin", Timestamp: day, Cases: 45, Delta: 5,
	}, nil)
	writer.EXPECT().Latest(gomock.Any(), "Hessen").Return(nil, feed.ErrNoObservation)
	// decreasing count
	writer.EXPECT().Latest(gomock.Any(), "Bremen").Return(&schema.Observation{
		Region: "Bremen", Timestamp: day.AddDate(0, 0, -1), Cases: 10,
	}, nil)

	writer.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, records []schema.Observation) error {
		assert.Len(t, records, 3)

		assert.Equal(t, "Bayern", records[0].Region)
		assert.Equal(t, day, records[0].Timestamp)
		assert.Equal(t, 20.0, records[0].Delta)
		assert.Equal(t, "Tirschenreuth", records[0].MostAffectedCounty)

		assert.Equal(t, "Berlin", records[1].Region)
		assert.Equal(t, 10.0, records[1].Delta)

		assert.Equal(t, "Hessen", records[2].Region)
		assert.Equal(t, 0.0, records[2].Delta)
		return nil
	}).Times(1)

	c := rkiCrawler{writer: writer, source: source, loc: berlin}
	assert.Nil(t, c.crawl(context.Background()))
}

func TestCrawlWithoutRankings(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	source := mocks.NewMockRKI(ctl)
	source.EXPECT().States(gomock.Any()).Return([]rki.StateFigures{
		{Region: "Hessen", Cases: 30, UpdateTime: update},
	}, nil)
	source.EXPECT().CountyRankings(gomock.Any()).Return(nil, fmt.Errorf("timeout"))

	writer := mocks.NewMockObservationWriter(ctl)
	writer.EXPECT().Latest(gomock.Any(), "Hessen").Return(nil, feed.ErrNoObservation)
	writer.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil)

	c := rkiCrawler{writer: writer, source: source, loc: berlin}
	assert.Nil(t, c.crawl(context.Background()))
}

func TestCrawlStatesFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	source := mocks.NewMockRKI(ctl)
	source.EXPECT().States(gomock.Any()).Return(nil, fmt.Errorf("service unavailable"))

	writer := mocks.NewMockObservationWriter(ctl)

	c := rkiCrawler{writer: writer, source: source, loc: berlin}
	assert.EqualError(t, c.crawl(context.Background()), "service unavailable")
}
