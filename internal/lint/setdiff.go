package lint

import "github.com/RoaringBitmap/roaring"

// pathSet interns catalog-relative paths to dense uint32 ids so the
// declared/discovered comparison runs as bitmap operations.
type pathSet struct {
	ids   map[string]uint32
	names []string
}

func newPathSet() *pathSet {
	return &pathSet{ids: make(map[string]uint32)}
}

func (s *pathSet) id(p string) uint32 {
	if id, ok := s.ids[p]; ok {
		return id
	}
	id := uint32(len(s.names))
	s.ids[p] = id
	s.names = append(s.names, p)
	return id
}

func (s *pathSet) bitmap(paths []string) *roaring.Bitmap {
	b := roaring.New()
	for _, p := range paths {
		b.Add(s.id(p))
	}
	return b
}

func (s *pathSet) paths(b *roaring.Bitmap) []string {
	out := make([]string, 0, b.GetCardinality())
	iter := b.Iterator()
	for iter.HasNext() {
		out = append(out, s.names[iter.Next()])
	}
	return out
}

// diffPaths compares the index's declared paths against the paths found on
// disk. stale = declared but missing (hard error); undeclared = present but
// not listed (warning by default).
func diffPaths(declared, discovered []string) (stale, undeclared []string) {
	set := newPathSet()
	dec := set.bitmap(declared)
	dis := set.bitmap(discovered)

	stale = set.paths(roaring.AndNot(dec, dis))
	undeclared = set.paths(roaring.AndNot(dis, dec))
	return stale, undeclared
}
