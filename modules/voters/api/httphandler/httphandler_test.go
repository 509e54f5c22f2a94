package httphandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bpmon-network/bpmon/common"
	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/bpmon-network/bpmon/internal/entity"
	"github.com/bpmon-network/bpmon/modules/voters/datagateway/mocks"
	"github.com/bpmon-network/bpmon/pkg/errorhandler"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, dg *mocks.VotersDataGateway) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{
		ErrorHandler: errorhandler.NewHTTPErrorHandler(),
	})
	require.NoError(t, New(dg).Mount(app))
	return app
}

func doRequest[T any](t *testing.T, app *fiber.App, target string) (int, HttpResponse[T]) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body HttpResponse[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestGetProxies(t *testing.T) {
	dg := mocks.NewVotersDataGateway(t)
	dg.EXPECT().GetProxies(mock.Anything, common.NetworkTestnet).Return([]entity.Proxy{
		{
			Owner:      "proxy1",
			Network:    common.NetworkTestnet,
			FIOAddress: lo.ToPtr("proxy@fiomembers"),
			Vote:       []string{"bpa"},
			Delegators: []entity.VoterWeight{
				{Owner: "alice", Weight: decimal.NewFromInt(40)},
				{Owner: "bob", Weight: decimal.NewFromInt(2)},
			},
		},
	}, nil)

	app := newTestApp(t, dg)
	status, body := doRequest[[]proxyResult](t, app, "/v1/proxies?chain=testnet")

	assert.Equal(t, http.StatusOK, status)
	require.NotNil(t, body.Result)
	require.Len(t, *body.Result, 1)
	proxy := (*body.Result)[0]
	assert.Equal(t, "proxy1", proxy.Owner)
	assert.Equal(t, lo.ToPtr("proxy@fiomembers"), proxy.FIOAddress)
	assert.Equal(t, []string{"bpa"}, proxy.Vote)
	assert.True(t, decimal.NewFromInt(42).Equal(proxy.TotalWeight), proxy.TotalWeight.String())
}

func TestGetProxiesUnsupportedChain(t *testing.T) {
	dg := mocks.NewVotersDataGateway(t)
	app := newTestApp(t, dg)

	status, body := doRequest[[]proxyResult](t, app, "/v1/proxies?chain=devnet")

	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, body.Error)
	assert.Contains(t, *body.Error, "validation error")
}

func TestGetProducerVoters(t *testing.T) {
	testCases := []struct {
		name       string
		votes      entity.ProducerVotes
		err        error
		wantStatus int
		wantTotal  int64
	}{
		{
			name: "found",
			votes: entity.ProducerVotes{
				ProducerID: 7,
				Owner:      "bpa",
				Network:    common.NetworkMainnet,
				Voters: []entity.VoterWeight{
					{Owner: "alice", Weight: decimal.NewFromInt(100)},
					{Owner: "proxy1", Weight: decimal.NewFromInt(30)},
				},
			},
			wantStatus: http.StatusOK,
			wantTotal:  130,
		},
		{
			name:       "not found",
			err:        errors.Wrap(errs.NotFound, "producer votes not found"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "datagateway failure",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dg := mocks.NewVotersDataGateway(t)
			dg.EXPECT().GetProducerVotes(mock.Anything, common.NetworkMainnet, "bpa").Return(tc.votes, tc.err)
			app := newTestApp(t, dg)

			status, body := doRequest[producerVotersResult](t, app, "/v1/producers/bpa/voters")

			assert.Equal(t, tc.wantStatus, status)
			if tc.wantStatus != http.StatusOK {
				require.NotNil(t, body.Error)
				return
			}
			require.NotNil(t, body.Result)
			assert.Equal(t, "bpa", body.Result.Owner)
			assert.Len(t, body.Result.Voters, 2)
			assert.True(t, decimal.NewFromInt(tc.wantTotal).Equal(body.Result.TotalWeight))
		})
	}
}
