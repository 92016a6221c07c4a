package types

import (
	"encoding/json"

	sdkmath "cosmossdk.io/math"
)

// CommitteeEntry is one active validator with the stake embedded in the
// committee response, if any. Stake is in microcredits.
type CommitteeEntry struct {
	Address string
	Stake   sdkmath.Int
}

// Committee is the normalized validator set for the most recent observed
// point. Addresses are unique; first occurrence wins.
type Committee []CommitteeEntry

// AddressSet returns a membership set over the committee addresses, used to
// restrict fallback bonded rows to the same validator population.
func (c Committee) AddressSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c))
	for _, entry := range c {
		set[entry.Address] = struct{}{}
	}
	return set
}

// BondedRow is one raw (address, amount) pair from the bonded-balances
// history endpoint. The amount is left unparsed; callers run it through
// ParseRawAmount during summation.
type BondedRow struct {
	Address string
	Amount  json.RawMessage
}

// committee response field keys, probed in order; first match wins
var (
	addressKeys = []string{"address", "validator", "owner", "0"}
	stakeKeys   = []string{"stake", "power", "bonded", "1"}
)

// ParseCommittee normalizes a committee response into unique entries.
// Explorers disagree on the shape; three are recognized:
//
//   - an array of [address, stakeLike] pairs
//   - an array of objects carrying address and (optionally) stake fields,
//     possibly nested under a top-level "committee" field
//   - an array of bare address strings
//
// Rows that fit none of these are dropped rather than failing the response.
func ParseCommittee(raw json.RawMessage) Committee {
	rows := committeeRows(raw)
	if rows == nil {
		return nil
	}

	committee := make(Committee, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		entry, ok := parseCommitteeRow(row)
		if !ok {
			continue
		}
		if _, dup := seen[entry.Address]; dup {
			continue
		}
		seen[entry.Address] = struct{}{}
		committee = append(committee, entry)
	}
	return committee
}

// committeeRows locates the row array, unwrapping a "committee" envelope
// when present.
func committeeRows(raw json.RawMessage) []json.RawMessage {
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err == nil {
		return rows
	}

	var envelope struct {
		Committee []json.RawMessage `json:"committee"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		return envelope.Committee
	}
	return nil
}

func parseCommitteeRow(row json.RawMessage) (CommitteeEntry, bool) {
	// Bare address string.
	var addr string
	if err := json.Unmarshal(row, &addr); err == nil {
		if addr == "" {
			return CommitteeEntry{}, false
		}
		return CommitteeEntry{Address: addr, Stake: sdkmath.ZeroInt()}, true
	}

	// [address, stakeLike] pair.
	var pair []json.RawMessage
	if err := json.Unmarshal(row, &pair); err == nil {
		if len(pair) == 0 {
			return CommitteeEntry{}, false
		}
		if err := json.Unmarshal(pair[0], &addr); err != nil || addr == "" {
			return CommitteeEntry{}, false
		}
		entry := CommitteeEntry{Address: addr, Stake: sdkmath.ZeroInt()}
		if len(pair) > 1 {
			entry.Stake = ParseRawAmount(pair[1])
		}
		return entry, true
	}

	// Object with address/stake fields.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(row, &fields); err != nil {
		return CommitteeEntry{}, false
	}
	for _, key := range addressKeys {
		field, present := fields[key]
		if !present {
			continue
		}
		if err := json.Unmarshal(field, &addr); err == nil && addr != "" {
			break
		}
		addr = ""
	}
	if addr == "" {
		return CommitteeEntry{}, false
	}

	entry := CommitteeEntry{Address: addr, Stake: sdkmath.ZeroInt()}
	for _, key := range stakeKeys {
		if field, present := fields[key]; present {
			entry.Stake = ParseRawAmount(field)
			break
		}
	}
	return entry, true
}
