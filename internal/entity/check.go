package entity

import "time"

// Result codes stored on NodeCheck.Status besides plain HTTP status codes.
const (
	CheckStatusNoResponse    int32 = 0
	CheckStatusChainMismatch int32 = 10000
	CheckStatusStale         int32 = 10010
)

// NodeCheck is the evidence of one liveness probe. Immutable once stored.
type NodeCheck struct {
	ID            int64
	NodeID        int64
	Timestamp     time.Time
	ServerVersion string
	HeadBlockTime *time.Time
	CORS          bool
	Status        int32
}

type FetchCheck struct {
	ID        int64
	NodeID    int64
	Timestamp time.Time
	Results   int32
}

type BurstCheck struct {
	ID          int64
	NodeID      int64
	Timestamp   time.Time
	Status      bool
	BurstTarget int32
	BurstResult int32
}

// NodeCandidate is an api node eligible to serve a voter snapshot, with its fetch track record.
type NodeCandidate struct {
	NodeID             int64
	URL                string
	SuccessfulFetches  int64
	LatestFetchResults int32
}
