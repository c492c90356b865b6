package cardwise

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/cardwise/date"
)

// this file handles importing wallet state from a browser localStorage dump.
//
// The dump format is a single JSON object mapping storage keys to their
// string values, the way browser devtools export localStorage. The four keys
// of interest each hold a JSON-encoded document of their own:
//
//	{
//	  "cardwise_wallet": "[\"venture-x\",\"amex-gold\"]",
//	  "cardwise_perks_used": "{\"ag-uber\":{\"0\":true},\"csp-hotel-credit\":true}",
//	  "cardwise_expanded": "{\"amex-gold\":true}",
//	  "cardwise_anniversaries": "{\"venture-x\":\"03-15\"}"
//	}

const (
	storageKeyWallet        = "cardwise_wallet"
	storageKeyPerks         = "cardwise_perks_used"
	storageKeyExpanded      = "cardwise_expanded"
	storageKeyAnniversaries = "cardwise_anniversaries"
)

// ImportLocalStorage reads a localStorage dump into a fresh wallet. The
// import is best effort: a missing or malformed entry is skipped with a
// logged warning, unknown card ids are dropped from the card list, and a
// malformed anniversary is ignored. Only a dump that is not JSON at all is
// an error.
func ImportLocalStorage(r io.Reader) (*Wallet, error) {
	var dump any
	if err := json.NewDecoder(r).Decode(&dump); err != nil {
		return nil, fmt.Errorf("cannot parse localStorage dump: %w", err)
	}

	w := NewWallet()

	if raw, ok := storageEntry(dump, storageKeyWallet); ok {
		var ids []string
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			log.Printf("warning: skipping %s: %v", storageKeyWallet, err)
		} else {
			for _, id := range ids {
				if _, known := CardByID(id); !known {
					continue
				}
				if !w.Has(id) {
					w.cardIDs = append(w.cardIDs, id)
				}
			}
		}
	}

	if raw, ok := storageEntry(dump, storageKeyPerks); ok {
		var perks map[string]Usage
		if err := json.Unmarshal([]byte(raw), &perks); err != nil {
			log.Printf("warning: skipping %s: %v", storageKeyPerks, err)
		} else if perks != nil {
			w.perksUsed = perks
		}
	}

	if raw, ok := storageEntry(dump, storageKeyExpanded); ok {
		var expanded map[string]bool
		if err := json.Unmarshal([]byte(raw), &expanded); err != nil {
			log.Printf("warning: skipping %s: %v", storageKeyExpanded, err)
		} else if expanded != nil {
			w.expanded = expanded
		}
	}

	if raw, ok := storageEntry(dump, storageKeyAnniversaries); ok {
		var anniversaries map[string]string
		if err := json.Unmarshal([]byte(raw), &anniversaries); err != nil {
			log.Printf("warning: skipping %s: %v", storageKeyAnniversaries, err)
		} else {
			for cardID, mmdd := range anniversaries {
				md, err := date.ParseMonthDay(mmdd)
				if err != nil {
					log.Printf("warning: skipping anniversary for %q: %v", cardID, err)
					continue
				}
				w.anniversaries[cardID] = md
			}
		}
	}

	return w, nil
}

// storageEntry extracts one string-valued storage key from the decoded dump.
func storageEntry(dump any, key string) (string, bool) {
	jval, err := jsonpath.Get(fmt.Sprintf("$[%q]", key), dump)
	if err != nil {
		return "", false
	}
	// because jsonpath is never clear about whether it returns a list of one
	// answer or a single answer, keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	str, ok := jval.(string)
	return str, ok
}
