// internal/domain/cart/reducer.go
package cart

// Membership is the local mirror of which product ids are in the cart or
// wishlist. Transitions are pure functions applied only after the matching
// backend call succeeds; a failed call leaves the set untouched.
type Membership map[int64]struct{}

// NewMembership builds a membership set from a list of product ids
func NewMembership(productIDs []int64) Membership {
	set := make(Membership, len(productIDs))
	for _, id := range productIDs {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports set membership
func (m Membership) Contains(productID int64) bool {
	_, ok := m[productID]
	return ok
}

// IDs returns the member ids as a slice
func (m Membership) IDs() []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	return ids
}

// applyAdd returns a copy of the set with productID added
func applyAdd(set Membership, productID int64) Membership {
	next := make(Membership, len(set)+1)
	for id := range set {
		next[id] = struct{}{}
	}
	next[productID] = struct{}{}
	return next
}

// applyRemove returns a copy of the set with productID removed
func applyRemove(set Membership, productID int64) Membership {
	next := make(Membership, len(set))
	for id := range set {
		if id != productID {
			next[id] = struct{}{}
		}
	}
	return next
}

// applyRemoveAll returns a copy of the set with every given id removed
func applyRemoveAll(set Membership, productIDs []int64) Membership {
	next := set
	for _, id := range productIDs {
		next = applyRemove(next, id)
	}
	return next
}
