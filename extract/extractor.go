package extract

import (
	"fmt"
	"runtime/debug"

	"github.com/pranavarora99/pagesum"
	"golang.org/x/sync/errgroup"
)

// State is a stage of one extraction run.
type State int

// Extraction states. A run moves Idle → Traversing → Resolving → Assembled,
// or to Failed → FallbackAssembled from Traversing or Resolving.
const (
	StateIdle State = iota
	StateTraversing
	StateResolving
	StateAssembled
	StateFailed
	StateFallbackAssembled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTraversing:
		return "traversing"
	case StateResolving:
		return "resolving"
	case StateAssembled:
		return "assembled"
	case StateFailed:
		return "failed"
	case StateFallbackAssembled:
		return "fallback_assembled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// StateFunc observes state transitions. err is set on entering StateFailed.
type StateFunc func(state State, err error)

// Compile-time interface verification.
var _ pagesum.Summarizer = (*Extractor)(nil)

// Extractor turns a document into a PageSummary. It holds no per-run state,
// so one Extractor may serve concurrent Summarize calls.
type Extractor struct {
	parallel bool
	onState  StateFunc
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithParallelStages runs the six finishing stages concurrently. The
// result is identical to sequential execution.
func WithParallelStages() Option {
	return func(e *Extractor) {
		e.parallel = true
	}
}

// WithStateFunc registers an observer for state transitions.
func WithStateFunc(fn StateFunc) Option {
	return func(e *Extractor) {
		e.onState = fn
	}
}

// NewExtractor creates an Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Summarize extracts a summary from doc. It never fails: any error or
// panic raised while traversing or resolving yields the fallback summary
// with Degraded set.
func (e *Extractor) Summarize(doc pagesum.Document) pagesum.PageSummary {
	e.transition(StateIdle, nil)
	if doc == nil {
		return e.fail(nil, pagesum.Errorf(pagesum.EINVALID, "nil document"))
	}

	e.transition(StateTraversing, nil)
	b, err := traverseSafe(doc)
	if err != nil {
		return e.fail(doc, err)
	}

	e.transition(StateResolving, nil)
	acc := &accumulator{url: safeString(doc.URL)}
	if err := e.resolve(b, acc); err != nil {
		return e.fail(doc, err)
	}

	e.transition(StateAssembled, nil)
	return acc.summary()
}

func (e *Extractor) transition(s State, err error) {
	if e.onState != nil {
		e.onState(s, err)
	}
}

func (e *Extractor) fail(doc pagesum.Document, err error) pagesum.PageSummary {
	e.transition(StateFailed, err)
	s := fallback(doc)
	e.transition(StateFallbackAssembled, nil)
	return s
}

// accumulator collects stage results. Each stage writes exactly one field,
// so stages may run concurrently without locking.
type accumulator struct {
	url         string
	title       string
	description string
	keyPoints   []string
	images      []string
	colors      pagesum.BrandColors
	metrics     pagesum.Metrics
}

// summary assembles the final value, substituting defaults for anything
// a stage left empty or invalid.
func (a *accumulator) summary() pagesum.PageSummary {
	s := pagesum.PageSummary{
		URL:         a.url,
		Title:       a.title,
		Description: a.description,
		KeyPoints:   a.keyPoints,
		Images:      a.images,
		BrandColors: a.colors,
		Metrics:     a.metrics,
	}
	if s.Title == "" {
		s.Title = pagesum.DefaultTitle
	}
	if s.Description == "" {
		s.Description = pagesum.DefaultDescription
	}
	if s.KeyPoints == nil {
		s.KeyPoints = []string{}
	}
	if s.Images == nil {
		s.Images = []string{}
	}
	if !s.BrandColors.Primary.Valid() || !s.BrandColors.Secondary.Valid() {
		s.BrandColors = pagesum.DefaultBrandColors
	}
	return s
}

type stage struct {
	name string
	run  func(b *Buckets, acc *accumulator)
}

var stages = []stage{
	{"title", func(b *Buckets, acc *accumulator) { acc.title = ResolveTitle(b) }},
	{"description", func(b *Buckets, acc *accumulator) { acc.description = ResolveDescription(b) }},
	{"key_points", func(b *Buckets, acc *accumulator) { acc.keyPoints = ExtractKeyPoints(b) }},
	{"images", func(b *Buckets, acc *accumulator) { acc.images = ExtractImages(b, acc.url) }},
	{"brand_colors", func(b *Buckets, acc *accumulator) { acc.colors = ResolveBrandColors(b) }},
	{"metrics", func(b *Buckets, acc *accumulator) { acc.metrics = CalculateMetrics(b.Text) }},
}

func (e *Extractor) resolve(b *Buckets, acc *accumulator) error {
	if !e.parallel {
		for _, st := range stages {
			if err := runStage(st, b, acc); err != nil {
				return err
			}
		}
		return nil
	}

	// The images stage reads acc.url, which is set before any stage starts
	// and never written afterwards.
	var g errgroup.Group
	for _, st := range stages {
		g.Go(func() error {
			return runStage(st, b, acc)
		})
	}
	return g.Wait()
}

// runStage runs one stage, converting a panic into an error.
func runStage(st stage, b *Buckets, acc *accumulator) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = pagesum.Errorf(pagesum.EINTERNAL, "resolve %s: %v\n%s", st.name, r, debug.Stack())
		}
	}()
	st.run(b, acc)
	return nil
}

func traverseSafe(doc pagesum.Document) (b *Buckets, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = pagesum.Errorf(pagesum.EINTERNAL, "traverse: %v\n%s", r, debug.Stack())
		}
	}()
	root, err := doc.Root()
	if err != nil {
		return nil, fmt.Errorf("document root: %w", err)
	}
	return Traverse(root)
}

// fallback builds the degraded summary. The raw document title is used
// when it can be read without failing.
func fallback(doc pagesum.Document) pagesum.PageSummary {
	s := pagesum.PageSummary{
		Title:       pagesum.DefaultTitle,
		Description: pagesum.DefaultDescription,
		KeyPoints:   []string{},
		Images:      []string{},
		BrandColors: pagesum.DefaultBrandColors,
		Degraded:    true,
	}
	if doc == nil {
		return s
	}
	s.URL = safeString(doc.URL)
	if t := normalizeSpace(safeString(doc.Title)); t != "" {
		s.Title = t
	}
	return s
}

func safeString(fn func() string) (v string) {
	defer func() {
		if recover() != nil {
			v = ""
		}
	}()
	return fn()
}

