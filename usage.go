package cardwise

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Usage is the claim state of one perk. It has two forms, both accepted in
// persisted state: a blanket boolean (the legacy annual shorthand, true
// meaning "all periods used") and a per-period map. The first period toggle
// converts a blanket value into an empty per-period map; the conversion is
// one way.
type Usage struct {
	blanket bool
	periods map[int]bool // nil in blanket form
}

// Blanket returns the legacy all-or-nothing form.
func Blanket(used bool) Usage { return Usage{blanket: used} }

// PerPeriod returns the per-period form with the given periods marked used.
func PerPeriod(used ...int) Usage {
	u := Usage{periods: make(map[int]bool)}
	for _, p := range used {
		u.periods[p] = true
	}
	return u
}

// IsBlanket reports whether the usage is still in the legacy boolean form.
func (u Usage) IsBlanket() bool { return u.periods == nil }

// IsPeriodUsed reports whether the given period has been claimed. In blanket
// form the flag answers for every period.
func (u Usage) IsPeriodUsed(period int) bool {
	if u.periods == nil {
		return u.blanket
	}
	return u.periods[period]
}

// Count returns how many of total periods are claimed. A blanket true counts
// as all of them.
func (u Usage) Count(total int) int {
	if u.periods == nil {
		if u.blanket {
			return total
		}
		return 0
	}
	n := 0
	for _, used := range u.periods {
		if used {
			n++
		}
	}
	return n
}

// toggle flips one period and returns the new usage. A blanket value is first
// converted to an empty per-period map, discarding the blanket flag.
func (u Usage) toggle(period int) Usage {
	periods := make(map[int]bool, len(u.periods)+1)
	for k, v := range u.periods {
		periods[k] = v
	}
	periods[period] = !periods[period]
	return Usage{periods: periods}
}

// MarshalJSON writes the self-describing form: a bare boolean for blanket
// state, an object keyed by period index otherwise.
func (u Usage) MarshalJSON() ([]byte, error) {
	if u.periods == nil {
		return json.Marshal(u.blanket)
	}
	obj := make(map[string]bool, len(u.periods))
	for k, v := range u.periods {
		obj[strconv.Itoa(k)] = v
	}
	return json.Marshal(obj)
}

func (u *Usage) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*u = Usage{blanket: b}
		return nil
	}
	var obj map[string]bool
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("perk usage must be a boolean or an object: %w", err)
	}
	periods := make(map[int]bool, len(obj))
	for k, v := range obj {
		i, err := strconv.Atoi(k)
		if err != nil {
			// stale or foreign key, harmless
			continue
		}
		periods[i] = v
	}
	*u = Usage{periods: periods}
	return nil
}

var _ json.Marshaler = (*Usage)(nil)
var _ json.Unmarshaler = (*Usage)(nil)
