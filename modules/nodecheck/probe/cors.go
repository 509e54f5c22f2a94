package probe

import (
	"context"
	"strings"
	"time"

	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/bpmon-network/bpmon/pkg/httpclient"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

const corsTestOrigin = "http://test.com"

type preflight struct {
	path           string
	method         string
	requestHeaders string
}

var corsPreflights = []preflight{
	{path: "/v1/chain/get_info", method: "GET", requestHeaders: "content-type"},
	{path: "/v1/chain/get_fio_balance", method: "POST", requestHeaders: "content-type,accept"},
}

// CORS reports whether the node allows browser clients from any origin. The
// info response must carry a wildcard origin and both preflights must pass.
func (p *Prober) CORS(ctx context.Context, nodeURL string, info InfoResult) (bool, error) {
	defer observe("cors", time.Now())

	if !info.Responded {
		return false, errors.Wrap(errs.ValidationSkipped, "no successful info response")
	}
	if info.AllowOrigin != "*" {
		return false, errors.Wrapf(errs.ProtocolMismatch, "info allow-origin is %q", info.AllowOrigin)
	}

	client, err := p.client(nodeURL)
	if err != nil {
		return false, err
	}

	group, gctx := errgroup.WithContext(ctx)
	for _, pf := range corsPreflights {
		pf := pf
		group.Go(func() error {
			return p.preflight(gctx, client, pf)
		})
	}
	if err := group.Wait(); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Prober) preflight(ctx context.Context, client *httpclient.Client, pf preflight) error {
	resp, err := client.Options(ctx, pf.path, httpclient.RequestOptions{
		Header: map[string]string{
			"Origin":                         corsTestOrigin,
			"Access-Control-Request-Method":  pf.method,
			"Access-Control-Request-Headers": pf.requestHeaders,
		},
	})
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return unexpectedStatus(resp)
	}
	if origin := resp.HeaderValue("Access-Control-Allow-Origin"); origin != "*" {
		return errors.Wrapf(errs.ProtocolMismatch, "%s preflight allow-origin is %q", pf.method, origin)
	}
	if !ContentTypeAllowed(resp.HeaderValue("Access-Control-Allow-Headers")) {
		return errors.Wrapf(errs.ProtocolMismatch, "%s preflight does not allow content-type", pf.method)
	}
	return nil
}

// ContentTypeAllowed reports whether an Access-Control-Allow-Headers value
// admits the content-type header.
func ContentTypeAllowed(allowHeaders string) bool {
	for _, h := range strings.Split(strings.ToLower(allowHeaders), ",") {
		if h = strings.TrimSpace(h); h == "content-type" || h == "*" {
			return true
		}
	}
	return false
}
