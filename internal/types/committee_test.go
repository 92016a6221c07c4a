package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommittee_PairArray(t *testing.T) {
	raw := json.RawMessage(`[
		["aleo1aaa", "microcredits: 100"],
		["aleo1bbb", 250],
		["aleo1ccc"]
	]`)

	committee := ParseCommittee(raw)
	require.Len(t, committee, 3)
	assert.Equal(t, "aleo1aaa", committee[0].Address)
	assert.Equal(t, int64(100), committee[0].Stake.Int64())
	assert.Equal(t, int64(250), committee[1].Stake.Int64())
	assert.True(t, committee[2].Stake.IsZero())
}

func TestParseCommittee_ObjectArray(t *testing.T) {
	raw := json.RawMessage(`[
		{"address": "aleo1aaa", "stake": "100u64"},
		{"validator": "aleo1bbb", "power": 200},
		{"owner": "aleo1ccc", "bonded": "microcredits: 300"},
		{"0": "aleo1ddd", "1": 400},
		{"noaddress": true}
	]`)

	committee := ParseCommittee(raw)
	require.Len(t, committee, 4)
	assert.Equal(t, "aleo1aaa", committee[0].Address)
	assert.Equal(t, int64(100), committee[0].Stake.Int64())
	assert.Equal(t, "aleo1bbb", committee[1].Address)
	assert.Equal(t, int64(200), committee[1].Stake.Int64())
	assert.Equal(t, "aleo1ccc", committee[2].Address)
	assert.Equal(t, int64(300), committee[2].Stake.Int64())
	assert.Equal(t, "aleo1ddd", committee[3].Address)
	assert.Equal(t, int64(400), committee[3].Stake.Int64())
}

func TestParseCommittee_AddressFieldPriority(t *testing.T) {
	// address wins over validator, stake wins over power
	raw := json.RawMessage(`[
		{"address": "aleo1first", "validator": "aleo1second", "stake": 10, "power": 20}
	]`)

	committee := ParseCommittee(raw)
	require.Len(t, committee, 1)
	assert.Equal(t, "aleo1first", committee[0].Address)
	assert.Equal(t, int64(10), committee[0].Stake.Int64())
}

func TestParseCommittee_CommitteeEnvelope(t *testing.T) {
	raw := json.RawMessage(`{
		"starting_round": 12,
		"committee": [
			{"address": "aleo1aaa", "stake": 100},
			{"address": "aleo1bbb", "stake": 200}
		]
	}`)

	committee := ParseCommittee(raw)
	require.Len(t, committee, 2)
	assert.Equal(t, "aleo1aaa", committee[0].Address)
	assert.Equal(t, "aleo1bbb", committee[1].Address)
}

func TestParseCommittee_BareAddressStrings(t *testing.T) {
	raw := json.RawMessage(`["aleo1aaa", "aleo1bbb", ""]`)

	committee := ParseCommittee(raw)
	require.Len(t, committee, 2)
	for _, entry := range committee {
		assert.True(t, entry.Stake.IsZero())
	}
}

func TestParseCommittee_DeduplicatesFirstOccurrenceWins(t *testing.T) {
	raw := json.RawMessage(`[
		["aleo1aaa", "microcredits: 100"],
		["aleo1aaa", "microcredits: 999"],
		["aleo1bbb", 50]
	]`)

	committee := ParseCommittee(raw)
	require.Len(t, committee, 2)
	assert.Equal(t, "aleo1aaa", committee[0].Address)
	assert.Equal(t, int64(100), committee[0].Stake.Int64())
}

func TestParseCommittee_UnrecognizedRowsDropped(t *testing.T) {
	raw := json.RawMessage(`[
		42,
		null,
		["aleo1aaa", 7]
	]`)

	committee := ParseCommittee(raw)
	require.Len(t, committee, 1)
	assert.Equal(t, "aleo1aaa", committee[0].Address)
}

func TestParseCommittee_UnrecognizedResponse(t *testing.T) {
	assert.Nil(t, ParseCommittee(json.RawMessage(`"just a string"`)))
	assert.Nil(t, ParseCommittee(json.RawMessage(`{"height": 5}`)))
	assert.Nil(t, ParseCommittee(json.RawMessage(`not json`)))
}

func TestCommittee_AddressSet(t *testing.T) {
	committee := ParseCommittee(json.RawMessage(`["aleo1aaa", "aleo1bbb"]`))
	set := committee.AddressSet()
	require.Len(t, set, 2)
	_, ok := set["aleo1aaa"]
	assert.True(t, ok)
	_, ok = set["aleo1zzz"]
	assert.False(t, ok)
}
