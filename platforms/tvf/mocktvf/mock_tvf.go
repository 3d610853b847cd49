package mocktvf

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/utkugunce/volleysim/model"
)

type Client struct {
	mock.Mock
}

func (c *Client) LoadLeague(ctx context.Context, info *model.LeagueInfo) (*model.League, error) {
	args := c.Called(ctx, info)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}

	return l, args.Error(1)
}
