package articlescore

// ScoreResult is the per-element scoring breakdown (§3 ScoreResult).
type ScoreResult struct {
	TagName        string
	Class          string
	ID             string
	BaseScore      float64
	ClassWeight    float64
	ContentDensity float64
	LinkDensity    float64
	FinalScore     float64
}

// baseTagScore is the fixed per-tag contribution (§4.3).
var baseTagScore = map[string]float64{
	"article": 10,
	"section": 8,
	"div":     5,
	"td":      3,
	"blockquote": 3,
	"pre":     0,
	"form":    -3,
	"address": -3,
	"ol":      -3,
	"ul":      -3,
	"dl":      -3,
	"dd":      -3,
	"dt":      -3,
	"li":      -3,
	"h1":      -5,
	"h2":      -5,
	"h3":      -5,
	"h4":      -5,
	"h5":      -5,
	"h6":      -5,
	"th":      -5,
	"header":  -5,
	"footer":  -5,
	"nav":     -5,
}

// BaseTagScore returns the fixed per-tag score, 0 for any tag not listed.
func BaseTagScore(tag string) float64 {
	return baseTagScore[tag]
}
