package precedent

// ClientType distinguishes the two client categories a letter addresses.
type ClientType string

const (
	ClientIndividual ClientType = "Individual"
	ClientCorporate  ClientType = "Corporate"
)

// Track names the court track a claim is (or would be) allocated to.
type Track string

const (
	TrackSmallClaims  Track = "Small Claims Track"
	TrackFast         Track = "Fast Track"
	TrackIntermediate Track = "Intermediate Track"
	TrackMulti        Track = "Multi Track"
)

// Tracks lists every known track in menu order.
func Tracks() []Track {
	return []Track{TrackSmallClaims, TrackFast, TrackIntermediate, TrackMulti}
}

// Selections carries the run-time choices that drive conditional visibility.
type Selections struct {
	ClientType    ClientType
	ClaimAssigned bool
	Track         Track
}

// BlockTag names a conditional section of the precedent.
type BlockTag string

const (
	BlockNone BlockTag = ""

	BlockIndividual BlockTag = "indiv"
	BlockCorporate  BlockTag = "corp"

	// aN blocks render when the claim is already assigned to track N;
	// uN blocks when it is not yet assigned.
	BlockAssignedSmallClaims    BlockTag = "a1"
	BlockAssignedFast           BlockTag = "a2"
	BlockAssignedIntermediate   BlockTag = "a3"
	BlockAssignedMulti          BlockTag = "a4"
	BlockUnassignedSmallClaims  BlockTag = "u1"
	BlockUnassignedFast         BlockTag = "u2"
	BlockUnassignedIntermediate BlockTag = "u3"
	BlockUnassignedMulti        BlockTag = "u4"
)

// trackCondition is the (assigned, track) pair a track block requires.
type trackCondition struct {
	assigned bool
	track    Track
}

var trackConditions = map[BlockTag]trackCondition{
	BlockAssignedSmallClaims:    {true, TrackSmallClaims},
	BlockAssignedFast:           {true, TrackFast},
	BlockAssignedIntermediate:   {true, TrackIntermediate},
	BlockAssignedMulti:          {true, TrackMulti},
	BlockUnassignedSmallClaims:  {false, TrackSmallClaims},
	BlockUnassignedFast:         {false, TrackFast},
	BlockUnassignedIntermediate: {false, TrackIntermediate},
	BlockUnassignedMulti:        {false, TrackMulti},
}

// ParseBlockTag reports whether name is one of the enumerated tags. Anything
// else is ordinary text, never an error.
func ParseBlockTag(name string) (BlockTag, bool) {
	tag := BlockTag(name)
	switch tag {
	case BlockIndividual, BlockCorporate:
		return tag, true
	}
	if _, ok := trackConditions[tag]; ok {
		return tag, true
	}
	return BlockNone, false
}

// Visible evaluates the tag against the run-time selections. It is a pure
// function of the selections: the same tag yields the same answer anywhere in
// one request.
func (t BlockTag) Visible(sel Selections) bool {
	switch t {
	case BlockNone:
		return true
	case BlockIndividual:
		return sel.ClientType == ClientIndividual
	case BlockCorporate:
		return sel.ClientType == ClientCorporate
	}
	cond, ok := trackConditions[t]
	if !ok {
		return false
	}
	return sel.ClaimAssigned == cond.assigned && sel.Track == cond.track
}
