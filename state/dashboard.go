package state

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/fabianhinz/rkicasesdashboard-sub000/aggregate"
	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
	"github.com/fabianhinz/rkicasesdashboard-sub000/store"
	"github.com/fabianhinz/rkicasesdashboard-sub000/utils"
)

const dashboardLogPrefix = "dashboard"

// Dashboard - holds the current view and applies every change to it
type Dashboard interface {
	View() *View

	PushSnapshot(records []schema.Observation)
	PushRecent(records []schema.Observation)

	LoadPreferences(ctx context.Context)
	SetRegionFilter(ctx context.Context, filter schema.RegionFilter) error
	ToggleMetric(ctx context.Context, metric schema.Metric) (schema.VisibleMetrics, bool, error)
	SetDisplaySettings(ctx context.Context, settings schema.DisplaySettings) error

	SetRankings(rankings schema.CountyRankings, err error)

	Subscribe(fn func(*View)) string
	Unsubscribe(id string)
}

// Config - dashboard construction parameters
type Config struct {
	Location   *time.Location
	DateFormat string
	Store      store.PreferenceStore
	Scope      tally.Scope
}

type dashboard struct {
	sync.Mutex
	view atomic.Pointer[View]

	preferences store.PreferenceStore
	scope       tally.Scope
	displayKey  func(time.Time) string
	dayKey      func(time.Time) string

	// latest recent batch, kept raw so doubling rates can be attached again
	// once a newer snapshot arrives
	today     []schema.Observation
	yesterday []schema.Observation

	subscriberLock sync.RWMutex
	subscribers    map[string]func(*View)
	order          []string
}

// NewDashboard - return a dashboard with an empty view and default preferences
func NewDashboard(cfg Config) Dashboard {
	loc := cfg.Location
	if loc == nil {
		loc = utils.GetLocation(utils.DefaultTimezone)
	}

	layout := cfg.DateFormat
	if layout == "" {
		layout = utils.DefaultDateFormat
	}

	scope := cfg.Scope
	if scope == nil {
		scope = tally.NoopScope
	}

	prefs := cfg.Store
	if prefs == nil {
		prefs = store.NewMemoryPreferenceStore()
	}

	d := &dashboard{
		preferences: prefs,
		scope:       scope.SubScope(dashboardLogPrefix),
		displayKey:  utils.DisplayKey(loc, layout),
		dayKey:      utils.DayKey(loc),
		subscribers: make(map[string]func(*View)),
	}
	d.view.Store(emptyView())
	return d
}

// View returns the currently installed view.
func (d *dashboard) View() *View {
	return d.view.Load()
}

// PushSnapshot rebuilds region and day series from the complete history.
func (d *dashboard) PushSnapshot(records []schema.Observation) {
	d.scope.Counter("snapshot_pushed").Inc(1)

	d.update(func(v *View) {
		v.Regions = aggregate.BuildRegionSeries(records)
		v.Days = aggregate.BuildDaySeries(v.Regions, d.displayKey).Ordered()
		d.summarize(v)
	})

	log.WithFields(log.Fields{
		"prefix":  dashboardLogPrefix,
		"records": len(records),
	}).Debug("snapshot applied")
}

// PushRecent replaces the today and yesterday records used by the summary.
func (d *dashboard) PushRecent(records []schema.Observation) {
	d.scope.Counter("recent_pushed").Inc(1)

	today, yesterday := aggregate.SplitRecent(records, d.dayKey)

	d.update(func(v *View) {
		d.today, d.yesterday = today, yesterday
		d.summarize(v)
	})

	log.WithFields(log.Fields{
		"prefix":    dashboardLogPrefix,
		"today":     len(today),
		"yesterday": len(yesterday),
	}).Debug("recent records applied")
}

// LoadPreferences reads stored preferences. Anything missing or unreadable is
// replaced by its default.
func (d *dashboard) LoadPreferences(ctx context.Context) {
	var filter schema.RegionFilter
	if err := d.preferences.Get(ctx, schema.PreferenceRegionFilter, &filter); err != nil {
		d.preferenceMissing(schema.PreferenceRegionFilter, err)
		filter = schema.RegionFilter{}
	}

	var metrics schema.VisibleMetrics
	if err := d.preferences.Get(ctx, schema.PreferenceVisibleMetrics, &metrics); err != nil {
		d.preferenceMissing(schema.PreferenceVisibleMetrics, err)
		metrics = schema.DefaultVisibleMetrics
	} else if !metrics.Valid() {
		log.WithFields(log.Fields{
			"prefix":  dashboardLogPrefix,
			"metrics": metrics,
		}).Warn("stored visible metrics invalid, use default")
		metrics = schema.DefaultVisibleMetrics
	}

	display := schema.DefaultDisplaySettings
	if err := d.preferences.Get(ctx, schema.PreferenceDisplaySettings, &display); err != nil {
		d.preferenceMissing(schema.PreferenceDisplaySettings, err)
		display = schema.DefaultDisplaySettings
	}

	d.update(func(v *View) {
		v.Filter = filter.Normalize()
		v.Metrics = metrics
		v.Display = display
		d.summarize(v)
	})
}

func (d *dashboard) preferenceMissing(key string, err error) {
	if err == store.ErrPreferenceNotFound {
		log.WithFields(log.Fields{
			"prefix": dashboardLogPrefix,
			"key":    key,
		}).Debug("preference not stored, use default")
		return
	}

	d.scope.Counter("preference_read_error").Inc(1)
	log.WithFields(log.Fields{
		"prefix": dashboardLogPrefix,
		"key":    key,
		"error":  err,
	}).Warn("read preference, use default")
}

// SetRegionFilter persists the filter and recomputes the summary for it.
func (d *dashboard) SetRegionFilter(ctx context.Context, filter schema.RegionFilter) error {
	filter = filter.Normalize()

	d.Lock()
	if err := d.persist(ctx, schema.PreferenceRegionFilter, filter); err != nil {
		d.Unlock()
		return err
	}
	v := d.install(func(v *View) {
		v.Filter = filter
		d.summarize(v)
	})
	d.Unlock()

	d.notify(v)
	return nil
}

// ToggleMetric flips the visibility of a metric. Hiding the last visible
// metric is refused without an error and reported by changed being false.
func (d *dashboard) ToggleMetric(ctx context.Context, metric schema.Metric) (schema.VisibleMetrics, bool, error) {
	if _, err := schema.ParseMetric(string(metric)); err != nil {
		return nil, false, err
	}

	d.Lock()
	metrics, changed := d.View().Metrics.Toggle(metric)
	if !changed {
		d.Unlock()
		return metrics, false, nil
	}

	if err := d.persist(ctx, schema.PreferenceVisibleMetrics, metrics); err != nil {
		d.Unlock()
		return nil, false, err
	}
	v := d.install(func(v *View) {
		v.Metrics = metrics
	})
	d.Unlock()

	d.notify(v)
	return metrics, true, nil
}

// SetDisplaySettings persists chart presentation switches.
func (d *dashboard) SetDisplaySettings(ctx context.Context, settings schema.DisplaySettings) error {
	d.Lock()
	if err := d.persist(ctx, schema.PreferenceDisplaySettings, settings); err != nil {
		d.Unlock()
		return err
	}
	v := d.install(func(v *View) {
		v.Display = settings
	})
	d.Unlock()

	d.notify(v)
	return nil
}

// SetRankings installs freshly fetched county rankings. A failed fetch keeps
// the previous rankings and exposes the error message instead.
func (d *dashboard) SetRankings(rankings schema.CountyRankings, err error) {
	if err != nil {
		d.scope.Counter("ranking_error").Inc(1)
	}

	d.update(func(v *View) {
		if err != nil {
			v.RankingError = err.Error()
			return
		}
		if rankings == nil {
			rankings = schema.CountyRankings{}
		}
		v.Rankings = rankings
		v.RankingError = ""
	})
}

// Subscribe registers fn to be called with every newly installed view.
func (d *dashboard) Subscribe(fn func(*View)) string {
	id := uuid.New().String()

	d.subscriberLock.Lock()
	d.subscribers[id] = fn
	d.order = append(d.order, id)
	d.subscriberLock.Unlock()

	return id
}

// Unsubscribe removes a subscription, unknown ids are ignored.
func (d *dashboard) Unsubscribe(id string) {
	d.subscriberLock.Lock()
	defer d.subscriberLock.Unlock()

	if _, ok := d.subscribers[id]; !ok {
		return
	}
	delete(d.subscribers, id)

	for i, s := range d.order {
		if s == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

func (d *dashboard) persist(ctx context.Context, key string, value interface{}) error {
	if err := d.preferences.Put(ctx, key, value); err != nil {
		d.scope.Counter("preference_write_error").Inc(1)
		log.WithFields(log.Fields{
			"prefix": dashboardLogPrefix,
			"key":    key,
			"error":  err,
		}).Error("persist preference")
		return err
	}
	return nil
}

// update applies fn to a copy of the current view, installs it and notifies
// subscribers.
func (d *dashboard) update(fn func(v *View)) {
	d.Lock()
	v := d.install(fn)
	d.Unlock()

	d.notify(v)
}

// install must be called with the lock held.
func (d *dashboard) install(fn func(v *View)) *View {
	next := *d.View()
	fn(&next)
	next.UpdatedAt = time.Now()
	d.view.Store(&next)
	return &next
}

// summarize must be called with the lock held.
func (d *dashboard) summarize(v *View) {
	timer := d.scope.Timer("summary").Start()
	defer timer.Stop()

	v.Today = aggregate.AnnotateDoublingRates(d.today, v.Regions)
	v.Yesterday = aggregate.AnnotateDoublingRates(d.yesterday, v.Regions)
	v.Summary, v.Percent = aggregate.BuildSummary(v.Today, v.Yesterday, v.Filter)
}

func (d *dashboard) notify(v *View) {
	d.subscriberLock.RLock()
	fns := make([]func(*View), 0, len(d.order))
	for _, id := range d.order {
		fns = append(fns, d.subscribers[id])
	}
	d.subscriberLock.RUnlock()

	for _, fn := range fns {
		fn(v)
	}
}
