package citekey

// KeySet is the membership test the generator needs from the keys already
// assigned.
type KeySet interface {
	Has(key string) bool
}

// Keys is an insertion-ordered set of citation keys. The zero value is ready
// to use. Keys is not safe for concurrent mutation.
type Keys struct {
	order []string
	set   map[string]struct{}
}

// NewKeys returns a set holding keys.
func NewKeys(keys ...string) *Keys {
	k := &Keys{}
	for _, key := range keys {
		k.Add(key)
	}
	return k
}

// Add inserts key and reports whether it was not already present.
func (k *Keys) Add(key string) bool {
	if k.set == nil {
		k.set = make(map[string]struct{})
	}
	if _, ok := k.set[key]; ok {
		return false
	}
	k.set[key] = struct{}{}
	k.order = append(k.order, key)
	return true
}

func (k *Keys) Has(key string) bool {
	if k == nil {
		return false
	}
	_, ok := k.set[key]
	return ok
}

func (k *Keys) Len() int {
	if k == nil {
		return 0
	}
	return len(k.order)
}

// Slice returns the keys in insertion order.
func (k *Keys) Slice() []string {
	if k == nil {
		return nil
	}
	return append([]string(nil), k.order...)
}
