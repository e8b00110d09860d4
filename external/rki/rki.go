package rki

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/fabianhinz/rkicasesdashboard-sub000/consts"
	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
)

const (
	logPrefix = "rki"

	DefaultCountyURL = "https://services7.arcgis.com/mOBPykOjAyBO2ZKk/arcgis/rest/services/RKI_Landkreisdaten/FeatureServer/0/query?where=1%3D1&outFields=GEN,BL,cases7_per_100k&returnGeometry=false&f=json"
	DefaultStateURL  = "https://services7.arcgis.com/mOBPykOjAyBO2ZKk/arcgis/rest/services/Coronaf%C3%A4lle_in_den_Bundesl%C3%A4ndern/FeatureServer/0/query?where=1%3D1&outFields=LAN_ew_GEN,Fallzahl,Death,faelle_100000_EW,Aktualisierung&returnGeometry=false&f=json"

	defaultTimeout = 15 * time.Second
)

var (
	errResponseStatus = fmt.Errorf("response status not ok")
	errEmptyResponse  = fmt.Errorf("empty response")
)

// StateFigures - the latest published totals of one federal state
type StateFigures struct {
	Region     string
	Cases      float64
	Deaths     float64
	Rate       float64
	UpdateTime time.Time
}

// RKI - client of the RKI ArcGIS feature services
type RKI interface {
	CountyRankings(ctx context.Context) (schema.CountyRankings, error)
	States(ctx context.Context) ([]StateFigures, error)
}

type rki struct {
	client    *http.Client
	countyURL string
	stateURL  string
}

type countyAttributes struct {
	County string   `json:"GEN"`
	Region string   `json:"BL"`
	Rate   *float64 `json:"cases7_per_100k"`
}

type stateAttributes struct {
	Region     string   `json:"LAN_ew_GEN"`
	Cases      *float64 `json:"Fallzahl"`
	Deaths     *float64 `json:"Death"`
	Rate       *float64 `json:"faelle_100000_EW"`
	UpdateTime int64    `json:"Aktualisierung"`
}

type featureResponse struct {
	Features []struct {
		Attributes json.RawMessage `json:"attributes"`
	} `json:"features"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// CountyRankings returns the counties of every state, highest seven day
// incidence first.
func (r *rki) CountyRankings(ctx context.Context) (schema.CountyRankings, error) {
	features, err := r.query(ctx, r.countyURL)
	if err != nil {
		return nil, err
	}

	rankings := make(schema.CountyRankings)
	for _, raw := range features {
		var a countyAttributes
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
		if a.County == "" || a.Region == "" {
			continue
		}

		var rate float64
		if a.Rate != nil {
			rate = *a.Rate
		}

		region, err := consts.RegionName(a.Region)
		if err != nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "region": a.Region}).Warn("unknown region in county data")
		}
		rankings[region] = append(rankings[region], schema.CountyRanking{
			County: a.County,
			Region: region,
			Rate:   rate,
		})
	}

	for _, counties := range rankings {
		sort.SliceStable(counties, func(i, j int) bool {
			if counties[i].Rate == counties[j].Rate {
				return counties[i].County < counties[j].County
			}
			return counties[i].Rate > counties[j].Rate
		})
	}

	return rankings, nil
}

// States returns the current totals of every federal state.
func (r *rki) States(ctx context.Context) ([]StateFigures, error) {
	features, err := r.query(ctx, r.stateURL)
	if err != nil {
		return nil, err
	}

	result := make([]StateFigures, 0, len(features))
	for _, raw := range features {
		var a stateAttributes
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}

		region, err := consts.RegionName(a.Region)
		if err != nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "region": a.Region}).Warn("skip unknown region")
			continue
		}

		s := StateFigures{
			Region:     region,
			UpdateTime: time.Unix(0, a.UpdateTime*int64(time.Millisecond)).UTC(),
		}
		if a.Cases != nil {
			s.Cases = *a.Cases
		}
		if a.Deaths != nil {
			s.Deaths = *a.Deaths
		}
		if a.Rate != nil {
			s.Rate = *a.Rate
		}
		result = append(result, s)
	}

	return result, nil
}

func (r *rki) query(ctx context.Context, url string) ([]json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if nil != err {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if nil != err {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "status": resp.StatusCode}).Error("query feature service")
		return nil, errResponseStatus
	}

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return nil, err
	}

	var body featureResponse
	if err := json.Unmarshal(d, &body); err != nil {
		return nil, err
	}

	// the feature service reports failures inside a 200 response
	if body.Error != nil {
		return nil, fmt.Errorf("%w: %d %s", errResponseStatus, body.Error.Code, body.Error.Message)
	}
	if len(body.Features) == 0 {
		return nil, errEmptyResponse
	}

	attributes := make([]json.RawMessage, 0, len(body.Features))
	for _, f := range body.Features {
		attributes = append(attributes, f.Attributes)
	}
	return attributes, nil
}

// New - return a RKI client, empty urls use the public feature services
func New(countyURL, stateURL string) RKI {
	if countyURL == "" {
		countyURL = DefaultCountyURL
	}
	if stateURL == "" {
		stateURL = DefaultStateURL
	}

	return &rki{
		client:    &http.Client{Timeout: defaultTimeout},
		countyURL: countyURL,
		stateURL:  stateURL,
	}
}
