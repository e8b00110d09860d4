package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fabianhinz/rkicasesdashboard-sub000/consts"
	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
)

func (s *Server) getPreferences(c *gin.Context) {
	v := s.dashboard.View()

	c.JSON(http.StatusOK, gin.H{
		"regionFilter":    v.Filter,
		"visibleMetrics":  v.Metrics,
		"displaySettings": v.Display,
	})
}

func (s *Server) updateRegionFilter(c *gin.Context) {
	var params struct {
		Regions []string `json:"regions"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	filter := make(schema.RegionFilter, 0, len(params.Regions))
	for _, r := range params.Regions {
		name, err := consts.RegionName(r)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownRegion, err)
			return
		}
		filter = append(filter, name)
	}

	if err := s.dashboard.SetRegionFilter(c, filter); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorStorePreference, err)
		return
	}

	v := s.dashboard.View()
	c.JSON(http.StatusOK, gin.H{
		"regionFilter": v.Filter,
		"summary":      v.Summary,
		"percent":      v.Percent,
	})
}

func (s *Server) toggleMetric(c *gin.Context) {
	metric, err := schema.ParseMetric(c.Param("metric"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownMetric, err)
		return
	}

	metrics, changed, err := s.dashboard.ToggleMetric(c, metric)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorStorePreference, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"visibleMetrics": metrics,
		"changed":        changed,
	})
}

func (s *Server) updateDisplaySettings(c *gin.Context) {
	var params schema.DisplaySettings

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.dashboard.SetDisplaySettings(c, params); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorStorePreference, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"displaySettings": params})
}
