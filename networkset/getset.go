// SPDX-License-Identifier: MIT

package networkset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/rfset/network"
)

// GetSet builds a set from every value of dict whose key contains substr,
// e.g. the "5v" networks of a network.LoadAll result.
// Behavior highlights:
//   - Keys are visited in ascending lexical order, so member order is stable.
//   - No matching key ⇒ (nil, nil) and a warning on the configured logger.
//
// Errors: New errors for the selected members.
func GetSet(dict map[string]*network.Network, substr string, opts ...Option) (*NetworkSet, error) {
	keys := make([]string, 0, len(dict))
	for k := range dict {
		if strings.Contains(k, substr) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		o := gatherOptions(opts)
		o.logger.WithField("substring", substr).Warn("no keys in network dictionary contain substring")
		return nil, nil
	}
	sort.Strings(keys)

	members := make([]*network.Network, len(keys))
	for i, k := range keys {
		members[i] = dict[k]
	}
	ns, err := New(members, opts...)
	if err != nil {
		return nil, fmt.Errorf("GetSet(%q): %w", substr, err)
	}
	return ns, nil
}
