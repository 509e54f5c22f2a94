package chainclient

import (
	"context"
	"crypto/sha1" //nolint:gosec // registry index key, not a security primitive
	"encoding/hex"
	"strings"

	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

const (
	fionamesIndexPosition = 5
	domainsIndexPosition  = 4
)

// NameHash returns the i128 registry key of a handle or domain name: the first
// 16 bytes of its sha1 digest, byte-reversed, as 0x-prefixed hex.
func NameHash(name string) string {
	sum := sha1.Sum([]byte(name)) //nolint:gosec
	key := sum[:16]
	lo.Reverse(key)
	return "0x" + hex.EncodeToString(key)
}

type domainRow struct {
	Name       string `json:"name"`
	Expiration int64  `json:"expiration"`
}

// ValidateHandle reports whether the handle is registered and its domain has not
// expired. Any lookup error is returned marked as ValidationSkipped.
func (c *Client) ValidateHandle(ctx context.Context, handle string) (bool, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return false, nil
	}
	_, domain, ok := strings.Cut(handle, "@")
	if !ok || domain == "" || strings.Contains(domain, "@") {
		return false, nil
	}

	handleKey := NameHash(handle)
	handles, err := getTableRows[map[string]any](c, ctx, getTableRowsRequest{
		JSON:          true,
		Code:          "fio.address",
		Scope:         "fio.address",
		Table:         "fionames",
		LowerBound:    handleKey,
		UpperBound:    handleKey,
		IndexPosition: fionamesIndexPosition,
		KeyType:       "i128",
	})
	if err != nil {
		return false, errors.Mark(errors.Wrapf(err, "can't lookup handle %s", handle), errs.ValidationSkipped)
	}
	if len(handles.Rows) == 0 {
		return false, nil
	}

	domainKey := NameHash(domain)
	domains, err := getTableRows[domainRow](c, ctx, getTableRowsRequest{
		JSON:          true,
		Code:          "fio.address",
		Scope:         "fio.address",
		Table:         "domains",
		LowerBound:    domainKey,
		UpperBound:    domainKey,
		IndexPosition: domainsIndexPosition,
		KeyType:       "i128",
	})
	if err != nil {
		return false, errors.Mark(errors.Wrapf(err, "can't lookup domain %s", domain), errs.ValidationSkipped)
	}
	if len(domains.Rows) == 0 {
		return false, nil
	}
	return domains.Rows[0].Expiration > c.now().Unix(), nil
}
