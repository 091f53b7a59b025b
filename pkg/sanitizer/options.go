package sanitizer

import "maps"

// Stage transforms one record during sanitization. Stages receive a working
// copy and may mutate it in place; the original input is never handed to a
// stage.
type Stage func(Record) Record

// StageName identifies a replaceable step of the sanitization pipeline.
type StageName string

const (
	// StageRemove drops fields listed via WithRemove.
	StageRemove StageName = "remove"
	// StageMask overwrites existing fields with their configured replacement.
	StageMask StageName = "mask"
	// StageFilter applies the Only/Except key filter.
	StageFilter StageName = "filter"
)

// stageOrder is fixed: removal runs before masking so a removed field can
// never be masked back in, and filtering sees the already-masked record.
var stageOrder = [...]StageName{StageRemove, StageMask, StageFilter}

type options struct {
	mask      map[string]any
	remove    []string
	only      []string
	except    []string
	deep      bool
	encode    TupleEncoder
	overrides map[StageName]Stage
}

func defaultOptions() options {
	return options{deep: true}
}

// clone guards a Sanitizer's base options against per-call mutation.
func (o options) clone() options {
	c := o
	c.mask = maps.Clone(o.mask)
	c.remove = append([]string(nil), o.remove...)
	c.only = append([]string(nil), o.only...)
	c.except = append([]string(nil), o.except...)
	c.overrides = maps.Clone(o.overrides)
	return c
}

// Option configures a Sanitizer or a single Sanitize call.
type Option func(*options)

// WithMask overwrites field with replacement wherever field already exists.
// Masking never inserts a key absent from the record.
func WithMask(field string, replacement any) Option {
	return func(o *options) {
		if o.mask == nil {
			o.mask = make(map[string]any)
		}
		o.mask[field] = replacement
	}
}

// WithMaskMap adds a whole field-to-replacement mapping at once.
func WithMaskMap(m map[string]any) Option {
	return func(o *options) {
		if len(m) == 0 {
			return
		}
		if o.mask == nil {
			o.mask = make(map[string]any, len(m))
		}
		maps.Copy(o.mask, m)
	}
}

// WithRemove drops the listed fields unconditionally.
func WithRemove(fields ...string) Option {
	return func(o *options) {
		o.remove = append(o.remove, fields...)
	}
}

// WithOnly keeps exactly the listed fields (intersected with existing keys).
// When given, any WithExcept configuration is ignored.
func WithOnly(fields ...string) Option {
	return func(o *options) {
		o.only = append(o.only, fields...)
	}
}

// WithExcept drops the listed fields after masking.
func WithExcept(fields ...string) Option {
	return func(o *options) {
		o.except = append(o.except, fields...)
	}
}

// WithoutRecursion limits sanitization to the top level. Nested values pass
// through untouched, including unloaded-relation placeholders.
func WithoutRecursion() Option {
	return func(o *options) {
		o.deep = false
	}
}

// WithTupleEncoder sets the encoder used to serialize tuples of arity other
// than two. Without one, such tuples fail with ErrEncoderNotConfigured.
func WithTupleEncoder(enc TupleEncoder) Option {
	return func(o *options) {
		if enc != nil {
			o.encode = enc
		}
	}
}

// WithStage replaces a built-in pipeline stage with a caller-supplied one.
// Unknown stage names are ignored.
func WithStage(name StageName, stage Stage) Option {
	return func(o *options) {
		if stage == nil {
			return
		}
		if o.overrides == nil {
			o.overrides = make(map[StageName]Stage)
		}
		o.overrides[name] = stage
	}
}

// stage resolves a pipeline step, preferring a caller override.
func (o options) stage(name StageName) Stage {
	if s, ok := o.overrides[name]; ok {
		return s
	}
	switch name {
	case StageRemove:
		return o.removeStage
	case StageMask:
		return o.maskStage
	case StageFilter:
		return o.filterStage
	default:
		return func(rec Record) Record { return rec }
	}
}

func (o options) removeStage(rec Record) Record {
	for _, field := range o.remove {
		delete(rec, field)
	}
	return rec
}

func (o options) maskStage(rec Record) Record {
	for field, replacement := range o.mask {
		if _, ok := rec[field]; ok {
			rec[field] = replacement
		}
	}
	return rec
}

func (o options) filterStage(rec Record) Record {
	// Only dominates Except when both are configured.
	if len(o.only) > 0 {
		keep := make(map[string]bool, len(o.only))
		for _, field := range o.only {
			keep[field] = true
		}
		for key := range rec {
			if !keep[key] {
				delete(rec, key)
			}
		}
		return rec
	}

	for _, field := range o.except {
		delete(rec, field)
	}
	return rec
}
