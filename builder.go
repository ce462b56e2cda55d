package readable

import (
	"github.com/tantowi/readable/internal/obslog"
	"github.com/tantowi/readable/internal/rconfig"
	"github.com/tantowi/readable/internal/siteconfigstore"
)

// Builder assembles a Readability engine through a chain of WithXxx calls
// terminated by Build, mirroring the teacher's WithDefault(...).WithX(...).Build()
// configuration style.
type Builder struct {
	bundle         rconfig.Bundle
	sink           obslog.Sink
	siteConfigRoot *siteconfigstore.Loader
}

// NewBuilder starts a Builder from the default tunable bundle.
func NewBuilder() *Builder {
	return &Builder{
		bundle: rconfig.DefaultBundle(),
		sink:   obslog.NopSink{},
	}
}

// WithConfigFile layers a JSON or YAML tunable file over the defaults.
func (b *Builder) WithConfigFile(path string) (*Builder, error) {
	bundle, err := rconfig.FromFile(path)
	if err != nil {
		return b, &Error{Kind: ErrConfig, Message: err.Error(), cause: err}
	}
	b.bundle = bundle
	return b, nil
}

// WithMinScore overrides the minimum final score a top candidate must
// reach to be considered readable.
func (b *Builder) WithMinScore(score float64) *Builder {
	b.bundle.Extract.MinScoreThreshold = score
	return b
}

// WithCharThreshold overrides the §4.5 character threshold. A non-priority
// element is scored only when its text has at least chars/10 characters.
func (b *Builder) WithCharThreshold(chars int) *Builder {
	b.bundle.Extract.CharThreshold = chars
	return b
}

// WithNbTopCandidates overrides how many top-scoring candidates survive
// into Phase C's tie-break.
func (b *Builder) WithNbTopCandidates(n int) *Builder {
	b.bundle.Extract.MaxTopCandidates = n
	b.bundle.Score.MaxTopCandidates = n
	return b
}

// WithMaxElemsToParse overrides the scan cap Phase A enforces before
// giving up on identifying candidates.
func (b *Builder) WithMaxElemsToParse(n int) *Builder {
	b.bundle.Extract.MaxElements = n
	return b
}

// WithRemoveUnlikely toggles the unlikely-candidate class/id removal step.
func (b *Builder) WithRemoveUnlikely(remove bool) *Builder {
	b.bundle.Preprocess.RemoveUnlikely = remove
	return b
}

// WithKeepClasses toggles whether class attributes survive post-processing.
func (b *Builder) WithKeepClasses(keep bool) *Builder {
	b.bundle.Extract.PostProcess.KeepClasses = keep
	return b
}

// WithPreserveImages toggles whether <img> elements survive post-processing.
func (b *Builder) WithPreserveImages(preserve bool) *Builder {
	b.bundle.Extract.PostProcess.StripImages = !preserve
	return b
}

// WithSink directs every component's observability records at sink instead
// of discarding them.
func (b *Builder) WithSink(sink obslog.Sink) *Builder {
	if sink != nil {
		b.sink = sink
	}
	return b
}

// WithSiteConfigRoots enables the site-config bypass path: directories
// searched, in order, for a per-host FTR file before falling back to the
// heuristic extractor.
func (b *Builder) WithSiteConfigRoots(roots ...string) *Builder {
	if len(roots) == 0 {
		return b
	}
	b.siteConfigRoot = siteconfigstore.NewLoader(roots...)
	return b
}

// Build validates the accumulated bundle and returns a ready Readability
// engine.
func (b *Builder) Build() (*Readability, error) {
	if b.bundle.Extract.MinScoreThreshold < 0 {
		return nil, &Error{Kind: ErrConfig, Message: "min score threshold must be non-negative"}
	}
	if b.bundle.Extract.MaxTopCandidates < 1 {
		return nil, &Error{Kind: ErrConfig, Message: "nb top candidates must be at least 1"}
	}
	return &Readability{
		bundle:     b.bundle,
		sink:       b.sink,
		siteConfig: b.siteConfigRoot,
	}, nil
}
