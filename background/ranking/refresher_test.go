package ranking

import (
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/fabianhinz/rkicasesdashboard-sub000/mocks"
	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
)

func TestRefresherRun(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	rankings := schema.CountyRankings{
		"Bayern": {{County: "Tirschenreuth", Region: "Bayern", Rate: 310.2}},
	}

	source := mocks.NewMockRKI(ctl)
	source.EXPECT().CountyRankings(gomock.Any()).Return(rankings, nil).Times(1)

	target := mocks.NewMockDashboard(ctl)
	target.EXPECT().SetRankings(rankings, nil).Times(1)

	NewRefresher(source, target).Run()
}

func TestRefresherRunFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	err := fmt.Errorf("service unavailable")

	source := mocks.NewMockRKI(ctl)
	source.EXPECT().CountyRankings(gomock.Any()).Return(nil, err).Times(1)

	target := mocks.NewMockDashboard(ctl)
	target.EXPECT().SetRankings(gomock.Nil(), err).Times(1)

	NewRefresher(source, target).Run()
}
