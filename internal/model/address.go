package model

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// AddressSet is a grow-only set of sender addresses. Blank addresses are never stored.
// It is not safe for concurrent use.
type AddressSet struct {
	set mapset.Set[string]
}

func NewAddressSet(addrs ...string) *AddressSet {
	a := &AddressSet{set: mapset.NewThreadUnsafeSet[string]()}
	for _, addr := range addrs {
		a.Add(addr)
	}
	return a
}

// Add inserts addr and reports whether it was not already present.
func (a *AddressSet) Add(addr string) bool {
	if strings.TrimSpace(addr) == "" {
		return false
	}
	if a.set == nil {
		a.set = mapset.NewThreadUnsafeSet[string]()
	}
	return a.set.Add(addr)
}

// Merge adds every member of other and returns how many were new.
func (a *AddressSet) Merge(other *AddressSet) int {
	if other == nil || other.set == nil {
		return 0
	}
	if a.set == nil {
		a.set = mapset.NewThreadUnsafeSet[string]()
	}
	return a.set.Append(other.set.ToSlice()...)
}

func (a *AddressSet) Contains(addr string) bool {
	return a.set != nil && a.set.Contains(addr)
}

func (a *AddressSet) Len() int {
	if a == nil || a.set == nil {
		return 0
	}
	return a.set.Cardinality()
}

// Sorted returns the members in lexical order.
func (a *AddressSet) Sorted() []string {
	if a == nil || a.set == nil {
		return []string{}
	}
	out := a.set.ToSlice()
	sort.Strings(out)
	return out
}
