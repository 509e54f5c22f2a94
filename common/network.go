package common

import "strings"

type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
)

// Networks lists every supported network in processing order.
var Networks = []Network{NetworkMainnet, NetworkTestnet}

var supportedNetworks = map[Network]struct{}{
	NetworkMainnet: {},
	NetworkTestnet: {},
}

// default chain ids, can be overridden by configuration.
var chainIDs = map[Network]string{
	NetworkMainnet: "21dcae42c0182200e93f954a074011f9048a7624c6fe81d3c9541a614a88bd1c",
	NetworkTestnet: "b20901380af44ef59c5918439a1f9a41d83669020319a80574b804a5f95cbd7e",
}

// ParseNetwork parses a network name case-insensitively. Empty string defaults to mainnet.
func ParseNetwork(s string) (Network, bool) {
	if s == "" {
		return NetworkMainnet, true
	}
	n := Network(strings.ToLower(strings.TrimSpace(s)))
	return n, n.IsSupported()
}

func (n Network) IsSupported() bool {
	_, ok := supportedNetworks[n]
	return ok
}

// ChainID returns the well-known chain id of the network.
func (n Network) ChainID() string {
	return chainIDs[n]
}

func (n Network) String() string {
	return string(n)
}
