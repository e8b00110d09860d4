package ranking

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"github.com/fabianhinz/rkicasesdashboard-sub000/external/rki"
	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
)

const (
	logPrefix      = "ranking"
	defaultTimeout = 30 * time.Second
)

// Setter - receives the outcome of every refresh
type Setter interface {
	SetRankings(rankings schema.CountyRankings, err error)
}

// Refresher - cron job fetching county rankings
type Refresher struct {
	source rki.RKI
	target Setter
}

func NewRefresher(source rki.RKI, target Setter) *Refresher {
	return &Refresher{
		source: source,
		target: target,
	}
}

// Run fetches the rankings once. A failure is handed to the target as well
// so it can be shown next to the previous rankings.
func (r *Refresher) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	rankings, err := r.source.CountyRankings(ctx)
	if err != nil {
		sentry.CaptureException(err)
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("fetch county rankings")
		r.target.SetRankings(nil, err)
		return
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"regions": len(rankings),
	}).Info("county rankings refreshed")
	r.target.SetRankings(rankings, nil)
}
