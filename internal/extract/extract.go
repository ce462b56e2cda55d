// Package extract implements the extractor (C5): candidate identification,
// ancestor score propagation, top-candidate selection, sibling inclusion,
// and emission of the combined, post-processed subtree.
package extract

import (
	"sort"
	"strings"
	"time"

	"github.com/tantowi/readable/internal/articlescore"
	"github.com/tantowi/readable/internal/ctree"
	"github.com/tantowi/readable/internal/htmldom"
	"github.com/tantowi/readable/internal/obslog"
	"github.com/tantowi/readable/internal/postprocess"
	"github.com/tantowi/readable/internal/rconfig"
	"github.com/tantowi/readable/pkg/failure"
)

// Extract runs the full §4.5 pipeline over doc and returns the emitted,
// post-processed subtree.
func Extract(
	doc *htmldom.Document,
	cfg rconfig.ExtractConfig,
	scoreCfg rconfig.ScoreConfig,
	sink obslog.Sink,
) (ExtractedContent, failure.ClassifiedError) {
	if sink == nil {
		sink = obslog.NopSink{}
	}

	candidates, err := identifyCandidates(doc, cfg, scoreCfg)
	if err != nil {
		return ExtractedContent{}, err
	}

	all := propagate(doc, candidates, scoreCfg)

	winner, pool, cerr := selectTopCandidate(all, cfg)
	if cerr != nil {
		sink.RecordError(obslog.ErrorRecord{
			Time:      time.Now(),
			Component: "extract",
			Action:    "select_top_candidate",
			Cause:     causeFor(cerr),
			Message:   cerr.Error(),
		})
		return ExtractedContent{}, cerr
	}

	siblings := includeSiblings(doc, winner, pool, cfg.SiblingThreshold)

	content, rerr := emit(winner, siblings, cfg.PostProcess)
	if rerr != nil {
		return ExtractedContent{}, rerr
	}

	sink.RecordArtifact(obslog.ArtifactRecord{
		Time: time.Now(),
		Kind: obslog.ArtifactArticle,
	})

	return ExtractedContent{
		Content:      content,
		TopScore:     winner.score.FinalScore,
		ElementCount: 1 + len(siblings),
	}, nil
}

func causeFor(err *ExtractError) obslog.ErrorCause {
	if err.Cause == ErrCauseNotReadable {
		return obslog.CauseInsufficientText
	}
	return obslog.CauseInvariantViolation
}

// Phase A.
func identifyCandidates(doc *htmldom.Document, cfg rconfig.ExtractConfig, scoreCfg rconfig.ScoreConfig) ([]candidate, *ExtractError) {
	var candidates []candidate
	scanned := 0

	for _, tag := range ctree.CandidateTags {
		if cfg.MaxElements > 0 && scanned >= cfg.MaxElements {
			break
		}
		elems, err := doc.Select(tag)
		if err != nil {
			return nil, &ExtractError{Message: err.Error(), Cause: ErrCauseNoContent}
		}
		for _, e := range elems {
			if cfg.MaxElements > 0 && scanned >= cfg.MaxElements {
				break
			}
			scanned++

			text := e.Text()
			if !isPriorityTag(tag) && len([]rune(text)) < cfg.CharThreshold/10 {
				continue
			}

			score := articlescore.Calculate(e, scoreCfg)
			candidates = append(candidates, candidate{
				tag:       tag,
				outerHTML: e.OuterHTML(),
				text:      text,
				score:     score,
			})
		}
	}

	return candidates, nil
}

// Phase B.
func propagate(doc *htmldom.Document, candidates []candidate, scoreCfg rconfig.ScoreConfig) []candidate {
	tree, err := ctree.Build(doc)
	if err != nil {
		return candidates
	}

	processed := map[ctree.ElementKey]bool{}
	all := make([]candidate, len(candidates))
	copy(all, candidates)

	for _, c := range candidates {
		parentNode, ok := tree.GetParentByKey(c.tag, c.outerHTML)
		if !ok {
			continue
		}

		if boosted, ok := boostAncestor(doc, parentNode, processed, c.score.FinalScore/2, scoreCfg); ok {
			all = append(all, boosted)
		}

		grandparentNode, ok := tree.GetParent(parentNode.ID)
		if !ok {
			continue
		}
		if boosted, ok := boostAncestor(doc, grandparentNode, processed, c.score.FinalScore/3, scoreCfg); ok {
			all = append(all, boosted)
		}
	}

	return all
}

func boostAncestor(doc *htmldom.Document, node ctree.Node, processed map[ctree.ElementKey]bool, bonus float64, scoreCfg rconfig.ScoreConfig) (candidate, bool) {
	key := ctree.NewElementKey(node.Tag, node.OuterHTML)
	if processed[key] {
		return candidate{}, false
	}

	elem, found := findElementByOuterHTML(doc, node.Tag, node.OuterHTML)
	if !found {
		return candidate{}, false
	}

	score := articlescore.Calculate(elem, scoreCfg)
	score.FinalScore += bonus
	processed[key] = true

	return candidate{tag: node.Tag, outerHTML: node.OuterHTML, text: elem.Text(), score: score}, true
}

func findElementByOuterHTML(doc *htmldom.Document, tag, outerHTML string) (htmldom.Element, bool) {
	elems, err := doc.Select(tag)
	if err != nil {
		return htmldom.Element{}, false
	}
	for _, e := range elems {
		if e.OuterHTML() == outerHTML {
			return e, true
		}
	}
	return htmldom.Element{}, false
}

// Phase C.
func selectTopCandidate(all []candidate, cfg rconfig.ExtractConfig) (candidate, []candidate, *ExtractError) {
	sorted := make([]candidate, len(all))
	copy(sorted, all)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].score.FinalScore > sorted[j].score.FinalScore
	})

	limit := cfg.MaxTopCandidates
	if limit <= 0 || limit > len(sorted) {
		limit = len(sorted)
	}
	pool := sorted[:limit]

	if len(pool) == 0 {
		return candidate{}, nil, &ExtractError{Message: "no candidates survived identification", Cause: ErrCauseNoContent}
	}

	winner := pool[0]
	for _, c := range pool[1:] {
		if better(c, winner) {
			winner = c
		}
	}

	if winner.score.FinalScore < cfg.MinScoreThreshold {
		return candidate{}, nil, &ExtractError{
			Message:   "top candidate score below threshold",
			Cause:     ErrCauseNotReadable,
			Score:     winner.score.FinalScore,
			Threshold: cfg.MinScoreThreshold,
		}
	}

	return winner, pool, nil
}

// better applies the Phase C tie-break: final_score, then tag priority,
// then descendant text length.
func better(a, b candidate) bool {
	if a.score.FinalScore != b.score.FinalScore {
		return a.score.FinalScore > b.score.FinalScore
	}
	pa, pb := tagPriority(a.tag), tagPriority(b.tag)
	if pa != pb {
		return pa > pb
	}
	return len([]rune(a.text)) > len([]rune(b.text))
}

// Phase D.
func includeSiblings(doc *htmldom.Document, winner candidate, pool []candidate, siblingThreshold float64) []candidate {
	tree, err := ctree.Build(doc)
	if err != nil {
		return nil
	}

	winnerNode, ok := tree.FindByKey(winner.tag, winner.outerHTML)
	if !ok || winnerNode.ParentID == -1 {
		return nil
	}
	parentID := winnerNode.ParentID

	var siblings []candidate
	for _, c := range pool {
		if c.outerHTML == winner.outerHTML {
			continue
		}
		if c.score.FinalScore < winner.score.FinalScore*siblingThreshold {
			continue
		}
		node, ok := tree.FindByKey(c.tag, c.outerHTML)
		if !ok || node.ParentID != parentID {
			continue
		}
		if c.tag == "p" {
			textLen := len([]rune(c.text))
			if !(textLen > 80 && linkDensityOf(doc, c) < 0.25) {
				continue
			}
		}
		siblings = append(siblings, c)
	}

	headers, err := doc.Select("header")
	if err != nil {
		return siblings
	}
	for _, h := range headers {
		node, ok := tree.FindByKey("header", h.OuterHTML())
		if !ok || node.ParentID != parentID {
			continue
		}
		trimmed := strings.TrimSpace(h.Text())
		if len([]rune(trimmed)) < 10 {
			continue
		}
		if h.OuterHTML() == winner.outerHTML || containsOuterHTML(siblings, h.OuterHTML()) {
			continue
		}
		siblings = append(siblings, candidate{tag: "header", outerHTML: h.OuterHTML(), text: h.Text()})
	}

	return siblings
}

func linkDensityOf(doc *htmldom.Document, c candidate) float64 {
	elem, found := findElementByOuterHTML(doc, c.tag, c.outerHTML)
	if !found {
		return 0
	}
	return articlescore.LinkDensity(elem)
}

func containsOuterHTML(candidates []candidate, outerHTML string) bool {
	for _, c := range candidates {
		if c.outerHTML == outerHTML {
			return true
		}
	}
	return false
}

// Phase E.
func emit(winner candidate, siblings []candidate, postCfg rconfig.PostProcessConfig) (string, *ExtractError) {
	parts := make([]string, 0, 1+len(siblings))
	parts = append(parts, winner.outerHTML)
	for _, s := range siblings {
		parts = append(parts, s.outerHTML)
	}
	combined := strings.Join(parts, "\n")

	cleaned, err := postprocess.Apply(combined, postCfg)
	if err != nil {
		return "", &ExtractError{Message: err.Error(), Cause: ErrCauseNoContent}
	}
	return cleaned, nil
}
