package spreadsheet

type rootKey struct {
	Label string
}

type childKey struct {
	ParentID uint
	Label    string
}

type pairKey struct {
	NameID     uint
	CategoryID uint
}

// resolverCache memoizes ids resolved during one import run so repeated
// labels hit the store once. It lives exactly as long as the run.
type resolverCache struct {
	themes     map[rootKey]uint
	subthemes  map[childKey]uint
	categories map[childKey]uint
	names      map[rootKey]uint
	pairs      map[pairKey]struct{}
}

func newResolverCache() *resolverCache {
	return &resolverCache{
		themes:     make(map[rootKey]uint),
		subthemes:  make(map[childKey]uint),
		categories: make(map[childKey]uint),
		names:      make(map[rootKey]uint),
		pairs:      make(map[pairKey]struct{}),
	}
}
