package main

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/fabianhinz/rkicasesdashboard-sub000/external/rki"
	"github.com/fabianhinz/rkicasesdashboard-sub000/feed"
	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
)

type rkiCrawler struct {
	writer feed.ObservationWriter
	source rki.RKI
	loc    *time.Location
}

func (c rkiCrawler) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := c.crawl(ctx); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("crawl RKI state figures")
	}
}

func (c rkiCrawler) crawl(ctx context.Context) error {
	states, err := c.source.States(ctx)
	if nil != err {
		return err
	}

	// rankings only provide the most affected county, go on without them
	rankings, err := c.source.CountyRankings(ctx)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Warn("county rankings from RKI")
	}

	records := make([]schema.Observation, 0, len(states))
	for _, s := range states {
		o, ok, err := c.observation(ctx, s, rankings)
		if nil != err {
			return err
		}
		if ok {
			records = append(records, o)
		}
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "count": len(records)}).Debug("data from RKI")

	return c.writer.Replace(ctx, records)
}

// observation turns the published figures of a state into the observation of
// its reporting day. The delta is taken against the latest stored observation
// of an earlier day.
func (c rkiCrawler) observation(ctx context.Context, s rki.StateFigures, rankings schema.CountyRankings) (schema.Observation, bool, error) {
	o := schema.Observation{
		Region:    s.Region,
		Timestamp: reportDay(s.UpdateTime, c.loc),
		Cases:     s.Cases,
		Deaths:    s.Deaths,
		Rate:      s.Rate,
	}
	if counties := rankings[s.Region]; len(counties) > 0 {
		o.MostAffectedCounty = counties[0].County
	}

	latest, err := c.writer.Latest(ctx, s.Region)
	if err == feed.ErrNoObservation {
		return o, true, nil
	}
	if nil != err {
		return o, false, err
	}

	previous := latest.Cases
	if !latest.Timestamp.Before(o.Timestamp) {
		// same day crawled again, compare against the day before it
		previous = latest.Cases - latest.Delta
	}

	o.Delta = o.Cases - previous
	if o.Delta < 0 {
		log.WithFields(log.Fields{
			"prefix":   logPrefix,
			"region":   s.Region,
			"cases":    o.Cases,
			"previous": previous,
		}).Warn("case count should be same or increased")
		return o, false, nil
	}

	return o, true, nil
}

// reportDay is midnight UTC of the calendar day the figures were published
// for in loc.
func reportDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// newCrawler - new cron job for daily crawler
func newCrawler(writer feed.ObservationWriter, source rki.RKI, loc *time.Location) Cron {
	return &rkiCrawler{
		writer: writer,
		source: source,
		loc:    loc,
	}
}
