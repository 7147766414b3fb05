package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Item is one required item as loaded from a project data file. Items are
// read-only catalog data; completion lives in the state store, keyed by
// the derived ID.
type Item struct {
	Name string `json:"name"`

	// Quantity is how many of the item the requirement needs. Data files
	// carry it as a number or a string; anything unparsable loads as 1.
	Quantity Quantity `json:"quantity"`

	// Requirement is the raw requirement field, possibly a comma-separated
	// list of several requirements.
	Requirement string `json:"requirement"`

	// ID is derived from Name and a single requirement token, see ItemID.
	ID string `json:"-"`

	// Project is the name of the project the item was loaded from.
	Project string `json:"-"`
}

// Quantity is an item count that tolerates sloppy source data: JSON
// numbers, numeric strings and garbage all unmarshal without error, with a
// floor of 1.
type Quantity int

// UnmarshalJSON accepts numbers and strings; non-numeric or missing values
// fall back to 1, never 0 and never an error.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	*q = 1

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if n >= 1 {
			*q = Quantity(n)
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n >= 1 {
			*q = Quantity(n)
		}
	}
	return nil
}

// Int returns the quantity as a plain int, treating the zero value (an
// item built without data) as 1.
func (q Quantity) Int() int {
	if q < 1 {
		return 1
	}
	return int(q)
}

// Requirements splits the raw requirement field into individual trimmed
// tokens. An empty field yields a single empty token so the item still
// forms one group.
func (i Item) Requirements() []string {
	if strings.TrimSpace(i.Requirement) == "" {
		return []string{""}
	}

	parts := strings.Split(i.Requirement, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) == 0 {
		return []string{""}
	}
	return tokens
}

// Reference carries display-only metadata for an item, loaded from the
// reference dataset. Optional fields stay zero-valued when the source
// omits them; the presentation layer renders a placeholder for those.
type Reference struct {
	Name        string     `json:"name"`
	Rarity      string     `json:"rarity"`
	Value       int        `json:"value"`
	ItemType    string     `json:"item_type"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	StatBlock   *StatBlock `json:"stat_block,omitempty"`
}

// StatBlock is the nested stats object of a reference record.
type StatBlock struct {
	Weight float64 `json:"weight"`
}

// Weight returns the weight when present.
func (r Reference) Weight() (float64, bool) {
	if r.StatBlock == nil {
		return 0, false
	}
	return r.StatBlock.Weight, true
}
