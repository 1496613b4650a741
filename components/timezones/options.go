package timezones

import "net/http"

// DefaultSeparator is the label of the disabled option between priority
// zones and the full list.
const DefaultSeparator = "-------------"

type EmptySearchMode string

const (
	EmptySearchNone EmptySearchMode = "none"
	EmptySearchTop  EmptySearchMode = "top"
)

type GuardFunc func(r *http.Request) error

// Options configures the component, its handler and the select ordering.
type Options struct {
	RoutePath       string
	SearchParam     string
	LimitParam      string
	PriorityParam   string
	DefaultLimit    int
	MaxLimit        int
	EmptySearchMode EmptySearchMode
	Separator       string
	Guard           GuardFunc

	Zones []string
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:       "/api/timezones",
		SearchParam:     "q",
		LimitParam:      "limit",
		PriorityParam:   "priority",
		DefaultLimit:    50,
		MaxLimit:        200,
		EmptySearchMode: EmptySearchNone,
		Separator:       DefaultSeparator,
	}
}

// NewOptions applies fns over the defaults and restores defaults for any
// member left blank or non-positive.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}

	defaults := DefaultOptions()
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = defaults.DefaultLimit
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = defaults.MaxLimit
	}
	if opts.EmptySearchMode == "" {
		opts.EmptySearchMode = defaults.EmptySearchMode
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaults.RoutePath
	}
	if opts.SearchParam == "" {
		opts.SearchParam = defaults.SearchParam
	}
	if opts.LimitParam == "" {
		opts.LimitParam = defaults.LimitParam
	}
	if opts.PriorityParam == "" {
		opts.PriorityParam = defaults.PriorityParam
	}
	if opts.Separator == "" {
		opts.Separator = defaults.Separator
	}
	if opts.Zones != nil {
		opts.Zones = append([]string{}, opts.Zones...)
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) { o.RoutePath = path }
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) { o.SearchParam = name }
}

func WithLimitParam(name string) OptionFn {
	return func(o *Options) { o.LimitParam = name }
}

func WithPriorityParam(name string) OptionFn {
	return func(o *Options) { o.PriorityParam = name }
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) { o.DefaultLimit = limit }
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) { o.MaxLimit = limit }
}

func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) { o.EmptySearchMode = mode }
}

// WithSeparator sets the label of the disabled separator option.
func WithSeparator(label string) OptionFn {
	return func(o *Options) { o.Separator = label }
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) { o.Guard = guard }
}

// WithZones replaces the embedded list. A nil slice restores it.
func WithZones(zones []string) OptionFn {
	return func(o *Options) {
		if zones == nil {
			o.Zones = nil
			return
		}
		o.Zones = append([]string{}, zones...)
	}
}

// ResolveZones returns opts.Zones, or the embedded list when unset.
func (o Options) ResolveZones() ([]string, error) {
	if o.Zones != nil {
		return append([]string{}, o.Zones...), nil
	}
	return DefaultZones()
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
