// Package salvage resolves what a party recovers when they break down an
// object of a given item level.
package salvage

import "github.com/cory-johannsen/numenera/internal/game/item"

// Kind names the reward slot a Result carries.
type Kind string

// Reward kinds.
const (
	KindNone     Kind = "none"
	KindOddity   Kind = "oddity"
	KindIotum    Kind = "iotum"
	KindCyphers  Kind = "cyphers"
	KindArtifact Kind = "artifact"
)

// Reward is the single optional reward slot of a Result. Only the types in
// this package implement it, so a Result can never hold two rewards.
type Reward interface {
	Kind() Kind
	reward()
}

// NoReward means only shins and parts were recovered.
type NoReward struct{}

// OddityReward holds one oddity.
type OddityReward struct {
	Oddity item.Oddity
}

// IotumReward holds one to three iotum.
type IotumReward struct {
	Iotum []item.Iotum
}

// CypherReward holds one to six cyphers.
type CypherReward struct {
	Cyphers []item.Cypher
}

// ArtifactReward holds one artifact.
type ArtifactReward struct {
	Artifact item.Artifact
}

func (NoReward) Kind() Kind { return KindNone }
func (OddityReward) Kind() Kind { return KindOddity }
func (IotumReward) Kind() Kind { return KindIotum }
func (CypherReward) Kind() Kind { return KindCyphers }
func (ArtifactReward) Kind() Kind { return KindArtifact }

func (NoReward) reward() {}
func (OddityReward) reward() {}
func (IotumReward) reward() {}
func (CypherReward) reward() {}
func (ArtifactReward) reward() {}

// Result is the outcome of salvaging one object.
//
// Invariant: Shins and Parts are always set; Reward is never nil.
type Result struct {
	// ID correlates the log lines of one resolution.
	ID     string
	Shins  int
	Parts  int
	Reward Reward
}

// Oddity returns the oddity slot, if populated.
func (r Result) Oddity() (item.Oddity, bool) {
	o, ok := r.Reward.(OddityReward)
	return o.Oddity, ok
}

// Iotum returns the iotum slot, or nil.
func (r Result) Iotum() []item.Iotum {
	if i, ok := r.Reward.(IotumReward); ok {
		return i.Iotum
	}
	return nil
}

// Cyphers returns the cypher slot, or nil.
func (r Result) Cyphers() []item.Cypher {
	if c, ok := r.Reward.(CypherReward); ok {
		return c.Cyphers
	}
	return nil
}

// Artifact returns the artifact slot, if populated.
func (r Result) Artifact() (item.Artifact, bool) {
	a, ok := r.Reward.(ArtifactReward)
	return a.Artifact, ok
}
