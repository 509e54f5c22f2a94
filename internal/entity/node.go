package entity

import (
	"github.com/bpmon-network/bpmon/common"
	"github.com/cockroachdb/errors"
)

type NodeStatus string

const (
	NodeStatusActive   NodeStatus = "active"
	NodeStatusDown     NodeStatus = "down"
	NodeStatusInactive NodeStatus = "inactive"

	// NodeStatusRemoved is written by producer sync only. Terminal.
	NodeStatusRemoved NodeStatus = "removed"
)

// ParseNodeStatus parses a stored status value.
func ParseNodeStatus(s string) (NodeStatus, error) {
	switch status := NodeStatus(s); status {
	case NodeStatusActive, NodeStatusDown, NodeStatusInactive, NodeStatusRemoved:
		return status, nil
	default:
		return "", errors.Errorf("unknown node status %q", s)
	}
}

func (s NodeStatus) String() string {
	return string(s)
}

type NodeRole string

const (
	NodeRoleAPI      NodeRole = "api"
	NodeRoleSeed     NodeRole = "seed"
	NodeRoleProducer NodeRole = "producer"
)

func ParseNodeRole(s string) (NodeRole, error) {
	switch role := NodeRole(s); role {
	case NodeRoleAPI, NodeRoleSeed, NodeRoleProducer:
		return role, nil
	default:
		return "", errors.Errorf("unknown node role %q", s)
	}
}

func (r NodeRole) String() string {
	return string(r)
}

type Producer struct {
	ID      int64
	Owner   string
	Network common.Network
	Status  string
}

type Node struct {
	ID            int64
	ProducerID    int64
	Network       common.Network
	Role          NodeRole
	URL           string
	Status        NodeStatus
	ServerVersion string
	HistoryV1     bool
	Hyperion      bool
}
