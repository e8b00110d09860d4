package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fabianhinz/rkicasesdashboard-sub000/consts"
	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
	"github.com/fabianhinz/rkicasesdashboard-sub000/utils"
)

func (s *Server) getRegions(c *gin.Context) {
	v := s.dashboard.View()

	requested := c.QueryArray("region")
	if len(requested) == 0 {
		c.JSON(http.StatusOK, gin.H{"regions": v.Regions})
		return
	}

	regions := make(map[string]schema.RegionSeries, len(requested))
	for _, r := range requested {
		name, err := consts.RegionName(r)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownRegion, err)
			return
		}
		series, ok := v.Regions[name]
		if !ok {
			series = schema.RegionSeries{}
		}
		regions[name] = series
	}

	c.JSON(http.StatusOK, gin.H{"regions": regions})
}

func (s *Server) getDays(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"days": s.dashboard.View().Days})
}

func (s *Server) getSummary(c *gin.Context) {
	v := s.dashboard.View()

	c.JSON(http.StatusOK, gin.H{
		"summary":      v.Summary,
		"percent":      v.Percent,
		"regionFilter": v.Filter,
	})
}

func (s *Server) getRankings(c *gin.Context) {
	v := s.dashboard.View()

	c.JSON(http.StatusOK, gin.H{
		"rankings":     v.Rankings.Filter(v.Filter),
		"rankingError": v.RankingError,
	})
}

type metricLabel struct {
	Metric schema.Metric `json:"metric"`
	Label  string        `json:"label"`
}

func (s *Server) getMetrics(c *gin.Context) {
	loc := utils.NewLocalizer(c.GetHeader("Accept-Language"))
	visible := s.dashboard.View().Metrics

	metrics := make([]metricLabel, 0, len(visible))
	for _, m := range visible {
		metrics = append(metrics, metricLabel{
			Metric: m,
			Label:  utils.MetricLabel(loc, string(m)),
		})
	}

	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}
