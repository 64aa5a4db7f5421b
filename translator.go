package dialect

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/ZaguanLabs/dialect/internal/worker"
)

// Translator is the main translation engine.
//
// A Translator never mutates its dictionaries, so one instance can be shared
// by any number of goroutines.
type Translator struct {
	dicts       *Dictionaries
	fingerprint string
	cache       TranslationCache
	processors  map[string]ContentProcessor
	logger      zerolog.Logger
	workers     int
}

// TranslationCache is the interface for translation caching.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// ContentProcessor is the interface for content processing.
type ContentProcessor interface {
	Extract(content string) (interface{}, []TextNode, error)
	Apply(parsed interface{}, nodes []TextNode, translations map[string]string) (string, error)
	ContentType() string
}

// TranslatorOption is a functional option for configuring the Translator.
type TranslatorOption func(*Translator)

// WithCache sets the result cache.
func WithCache(cache TranslationCache) TranslatorOption {
	return func(t *Translator) {
		t.cache = cache
	}
}

// WithProcessor registers a content processor.
func WithProcessor(processor ContentProcessor) TranslatorOption {
	return func(t *Translator) {
		t.processors[processor.ContentType()] = processor
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) TranslatorOption {
	return func(t *Translator) {
		t.logger = logger
	}
}

// WithWorkers sets how many goroutines batch and document translation use.
func WithWorkers(n int) TranslatorOption {
	return func(t *Translator) {
		if n > 0 {
			t.workers = n
		}
	}
}

// NewTranslator creates a Translator over the given dictionaries.
// A nil d yields a translator that changes nothing.
func NewTranslator(d *Dictionaries, opts ...TranslatorOption) *Translator {
	if d == nil {
		d = BuildDictionaries(Tables{})
	}
	t := &Translator{
		dicts:       d,
		fingerprint: d.Fingerprint(),
		processors:  make(map[string]ContentProcessor),
		logger:      zerolog.Nop(),
		workers:     4,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Dictionaries returns the dictionaries the translator was built with.
func (t *Translator) Dictionaries() *Dictionaries {
	return t.dicts
}

// Translate converts text into the variant selected by dir and reports the
// substituted terms. Empty input and input without known terms come back
// unchanged with no terms. An invalid direction changes nothing.
func (t *Translator) Translate(text string, dir Direction) Result {
	r, _ := t.lookup(text, dir)
	return r
}

// lookup translates text, consulting the cache first. The second return
// value reports a cache hit.
func (t *Translator) lookup(text string, dir Direction) (Result, bool) {
	if !dir.Valid() {
		t.logger.Warn().Str("direction", string(dir)).Msg("Unknown direction, text left unchanged")
		return unchanged(text), false
	}

	var key string
	if t.cache != nil {
		key = CacheKeyExtended(HashText(text), dir, t.fingerprint)
		if cached, ok := t.cache.Get(key); ok {
			var r Result
			if err := json.Unmarshal([]byte(cached), &r); err == nil {
				t.logger.Debug().Str("key", key).Msg("Cache hit")
				return r, true
			}
			t.logger.Warn().Str("key", key).Msg("Discarding unreadable cache entry")
		}
	}

	r := t.translate(text, dir)

	if t.cache != nil {
		data, err := json.Marshal(r)
		if err == nil {
			if err := t.cache.Set(key, string(data)); err != nil {
				t.logger.Warn().Err(err).Msg("Cache write failed")
			}
		}
	}

	return r, false
}

// translate runs the pipeline: honorifics, times, dictionary terms, casing.
func (t *Translator) translate(text string, dir Direction) Result {
	q, terms := normalizeHonorifics(text, t.dicts.Honorifics(dir), nil)
	terms = normalizeTimes(q, dir, terms)
	terms = substitute(q, t.dicts.Terms(dir), terms)
	reconcile(q)
	return assemble(q, terms)
}

// unchanged returns the identity result for text.
func unchanged(text string) Result {
	q := newSequence(0)
	q.appendText(text)
	return assemble(q, nil)
}

// TranslateBatch translates texts concurrently. Results are in input order.
// When ctx is cancelled before every text ran, the context error is returned.
func (t *Translator) TranslateBatch(ctx context.Context, texts []string, dir Direction) ([]Result, error) {
	if !dir.Valid() {
		return nil, &DirectionError{Value: string(dir)}
	}

	pool := worker.NewPool(t.workers, func(ctx context.Context, text string) (Result, error) {
		return t.Translate(text, dir), nil
	}).WithLogger(t.logger)

	t.logger.Debug().Int("texts", len(texts)).Int("workers", pool.Workers()).Msg("Translating batch")

	tasks := pool.Execute(ctx, texts)
	if err := ctx.Err(); err != nil {
		return nil, &TranslationError{Message: "batch translation cancelled", Cause: err}
	}

	results := make([]Result, len(tasks))
	for i, task := range tasks {
		results[i] = task.Result
	}
	return results, nil
}

// Process translates content of the specified type.
func (t *Translator) Process(ctx context.Context, content string, contentType string, dir Direction) (*ProcessedContent, error) {
	if !dir.Valid() {
		return nil, &DirectionError{Value: string(dir)}
	}

	// Get processor
	processor, ok := t.processors[contentType]
	if !ok {
		return nil, &ProcessorError{
			Message:     "no processor registered for content type",
			ContentType: contentType,
		}
	}

	// Extract text nodes
	parsed, nodes, err := processor.Extract(content)
	if err != nil {
		return nil, err
	}

	if len(nodes) == 0 {
		return &ProcessedContent{Content: content, Terms: []string{}}, nil
	}

	out, err := t.translateNodes(ctx, nodes, dir)
	if err != nil {
		return nil, err
	}

	// Apply translations
	result, err := processor.Apply(parsed, nodes, out.translations)
	if err != nil {
		return nil, err
	}

	if contentType == "html" {
		result = t.setHTMLAttributes(result, dir)
	}

	t.logger.Debug().
		Str("content_type", contentType).
		Int("nodes", len(nodes)).
		Int("changed", out.changed).
		Int("cached", out.cached).
		Msg("Processed content")

	return &ProcessedContent{
		Content:      result,
		Terms:        out.terms,
		ChangedNodes: out.changed,
		CachedCount:  out.cached,
		TotalNodes:   len(nodes),
	}, nil
}

// ProcessHTML is a convenience method for processing HTML content.
func (t *Translator) ProcessHTML(ctx context.Context, html string, dir Direction) (*ProcessedContent, error) {
	return t.Process(ctx, html, "html", dir)
}

type nodeOutcome struct {
	result Result
	cached bool
}

type nodesResult struct {
	translations map[string]string
	terms        []string
	changed      int
	cached       int
}

// translateNodes translates each distinct node text once, over the worker
// pool, and gathers terms in node order.
func (t *Translator) translateNodes(ctx context.Context, nodes []TextNode, dir Direction) (*nodesResult, error) {
	var unique []TextNode
	seen := make(map[string]bool)
	for _, node := range nodes {
		if !seen[node.Hash] {
			unique = append(unique, node)
			seen[node.Hash] = true
		}
	}

	pool := worker.NewPool(t.workers, func(ctx context.Context, node TextNode) (nodeOutcome, error) {
		r, hit := t.lookup(node.Text, dir)
		return nodeOutcome{result: r, cached: hit}, nil
	}).WithLogger(t.logger)

	tasks := pool.Execute(ctx, unique)
	if err := ctx.Err(); err != nil {
		return nil, &TranslationError{Message: "document translation cancelled", Cause: err}
	}

	byHash := make(map[string]nodeOutcome, len(tasks))
	out := &nodesResult{translations: make(map[string]string, len(tasks)), terms: []string{}}
	for _, task := range tasks {
		byHash[task.Input.Hash] = task.Result
		out.translations[task.Input.Hash] = task.Result.result.Text
		if task.Result.cached {
			out.cached++
		}
	}

	for _, node := range nodes {
		o := byHash[node.Hash]
		if o.result.Changed() {
			out.changed++
			out.terms = append(out.terms, o.result.Terms...)
		}
	}
	return out, nil
}

// setHTMLAttributes sets the lang attribute on the <html> tag to the target locale.
func (t *Translator) setHTMLAttributes(html string, dir Direction) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}

	htmlTag := doc.Find("html")
	if htmlTag.Length() > 0 {
		htmlTag.SetAttr("lang", dir.Target().String())
	}

	result, err := doc.Html()
	if err != nil {
		return html
	}

	return result
}
