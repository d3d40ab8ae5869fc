package model

import (
	"fmt"
	"sort"
)

// Quality tags the rendition of a variant. The set is fixed; playback order
// is 240p < 480p < 720p < 1080p.
type Quality string

const (
	Quality240p  Quality = "240p"
	Quality480p  Quality = "480p"
	Quality720p  Quality = "720p"
	Quality1080p Quality = "1080p"
)

var qualityRank = map[Quality]int{
	Quality240p:  1,
	Quality480p:  2,
	Quality720p:  3,
	Quality1080p: 4,
}

// ParseQuality validates a quality tag coming from the outside.
func ParseQuality(s string) (Quality, error) {
	q := Quality(s)
	if _, ok := qualityRank[q]; !ok {
		return "", fmt.Errorf("unknown quality %q", s)
	}
	return q, nil
}

// Rank returns the playback-order position of the quality. Unrecognised tags
// rank after every known one so they sort last, stable.
func (q Quality) Rank() int {
	if r, ok := qualityRank[q]; ok {
		return r
	}
	return len(qualityRank) + 1
}

// SortVariantsByQuality orders variants by the fixed quality order, in place.
func SortVariantsByQuality(vs []Variant) {
	sort.SliceStable(vs, func(i, j int) bool {
		return vs[i].Quality.Rank() < vs[j].Quality.Rank()
	})
}
