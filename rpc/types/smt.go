package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	zkcommon "github.com/0xPolygon/zk-smt/common"
	"github.com/0xPolygon/zk-smt/smt"
	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrInvalidField = errors.New("invalid field element")
	ErrInvalidLevel = errors.New("sibling level out of range")
)

// Field is a BN254 field element on the wire. It decodes from a decimal or 0x prefixed
// hexadecimal string (or a bare JSON number) and encodes as a decimal string.
type Field common.Hash

// FieldFromHash wraps h
func FieldFromHash(h common.Hash) Field {
	return Field(h)
}

// Hash returns the 32 bytes big-endian form of f
func (f Field) Hash() common.Hash {
	return common.Hash(f)
}

func (f Field) String() string {
	return zkcommon.FieldToBig(f.Hash()).String()
}

func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *Field) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	h, ok := zkcommon.ParseField(s)
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidField, s)
	}
	*f = Field(h)
	return nil
}

// Entry is a key/value pair on the wire
type Entry struct {
	Key   Field `json:"key"`
	Value Field `json:"value"`
}

// NewEntry converts e to its wire form
func NewEntry(e smt.Entry) Entry {
	return Entry{Key: Field(e.Key), Value: Field(e.Value)}
}

// ToSMT converts e to its core form
func (e Entry) ToSMT() smt.Entry {
	return smt.Entry{Key: e.Key.Hash(), Value: e.Value.Hash()}
}

func entryPtr(e *Entry) *smt.Entry {
	if e == nil {
		return nil
	}
	converted := e.ToSMT()
	return &converted
}

// SparseSiblings only carries the non zero siblings, keyed by level. An absent level is the
// zero sentinel.
type SparseSiblings map[uint16]Field

// NewSparseSiblings drops the zero levels of siblings
func NewSparseSiblings(siblings smt.Siblings) SparseSiblings {
	sparse := SparseSiblings{}
	for level, s := range siblings {
		if s != (common.Hash{}) {
			sparse[uint16(level)] = Field(s)
		}
	}
	return sparse
}

// ToSiblings expands s into the full sibling array
func (s SparseSiblings) ToSiblings() (smt.Siblings, error) {
	var siblings smt.Siblings
	for level, f := range s {
		if int(level) >= smt.Depth {
			return smt.Siblings{}, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
		}
		siblings[level] = f.Hash()
	}
	return siblings, nil
}

// VerifyRequest checks membership of Entry, or the absence of Entry.Key when MatchingEntry
// is set
type VerifyRequest struct {
	Entry         Entry          `json:"entry"`
	MatchingEntry *Entry         `json:"matchingEntry,omitempty"`
	Siblings      SparseSiblings `json:"siblings"`
	Root          Field          `json:"root"`
}

// Matching returns the matching entry in its core form, nil for a membership proof
func (r VerifyRequest) Matching() *smt.Entry {
	return entryPtr(r.MatchingEntry)
}

type AddRequest struct {
	Entry    Entry          `json:"entry"`
	OldRoot  Field          `json:"oldRoot"`
	Siblings SparseSiblings `json:"siblings"`
}

type DeleteRequest struct {
	Entry    Entry          `json:"entry"`
	OldRoot  Field          `json:"oldRoot"`
	Siblings SparseSiblings `json:"siblings"`
}

type UpdateRequest struct {
	NewValue Field          `json:"newValue"`
	OldEntry Entry          `json:"oldEntry"`
	OldRoot  Field          `json:"oldRoot"`
	Siblings SparseSiblings `json:"siblings"`
}

type RootResponse struct {
	Root Field `json:"root"`
}
