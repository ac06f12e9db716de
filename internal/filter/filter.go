package filter

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"tidypath/internal/model"
)

// ListMode selects which diagnostic listing, if any, is produced.
type ListMode int

const (
	ListNone     ListMode = iota // Quiet: only the rebuilt value
	ListFiltered                 // Keepers only
	ListAll                      // Every entry, legend included
)

// Options configures a Filter.
type Options struct {
	CheckExistence bool
	List           ListMode
	HomeToken      string
}

// Filter classifies segments of a path-like value.
type Filter struct {
	opts   Options
	exists func(string) bool
	log    logrus.FieldLogger
}

// Option customizes a Filter.
type Option func(*Filter)

// WithExistsFunc replaces the filesystem probe.
func WithExistsFunc(fn func(string) bool) Option {
	return func(f *Filter) { f.exists = fn }
}

// WithLogger sets the logger used for per-segment debug output.
func WithLogger(log logrus.FieldLogger) Option {
	return func(f *Filter) { f.log = log }
}

// New creates a Filter. An empty HomeToken defaults to "~".
func New(opts Options, options ...Option) *Filter {
	if opts.HomeToken == "" {
		opts.HomeToken = model.DefaultHomeToken
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	f := &Filter{
		opts:   opts,
		exists: model.Exists,
		log:    discard,
	}
	for _, o := range options {
		o(f)
	}
	return f
}

// Options returns the resolved configuration.
func (f *Filter) Options() Options {
	return f.opts
}

// Split breaks a raw value into segments. An empty value has no segments;
// otherwise empty segments from stray delimiters are preserved.
func Split(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, model.Delimiter)
}

// Classify assigns a code to every segment in a single ordered pass and
// collects the keepers. The first occurrence of a value always wins.
func (f *Filter) Classify(segments []string) model.Result {
	result := model.Result{
		Entries: make([]model.PathEntry, 0, len(segments)),
		Kept:    make([]string, 0, len(segments)),
	}

	seen := make(map[string]int, len(segments)) // value -> first index
	for i, seg := range segments {
		code := model.CodeKeep

		if first, ok := seen[seg]; ok {
			code += model.CodeDuplicate
			f.log.WithFields(logrus.Fields{"index": i, "first": first}).Debugf("duplicate: %q", seg)
		} else {
			seen[seg] = i
		}

		// Duplicates are probed too so listings show the full code.
		if f.opts.CheckExistence {
			target := model.ExpandHome(seg, f.opts.HomeToken)
			if !f.exists(target) {
				code += model.CodeMissing
				f.log.WithFields(logrus.Fields{"index": i, "path": target}).Debugf("missing: %q", seg)
			}
		}

		entry := model.PathEntry{Index: i, Value: seg, Code: code}
		result.Entries = append(result.Entries, entry)
		if entry.Kept() {
			result.Kept = append(result.Kept, seg)
		}
	}

	f.log.WithFields(logrus.Fields{
		"original": result.Original(),
		"final":    result.Final(),
	}).Debug("classification complete")

	return result
}

// Run splits raw and classifies it.
func (f *Filter) Run(raw string) model.Result {
	return f.Classify(Split(raw))
}
