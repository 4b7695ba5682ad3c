package domain

import "time"

// Option customises entity construction.
type Option func(*options)

type options struct {
	createdAt time.Time
}

// WithCreatedAt pins the creation timestamp instead of using the current time.
func WithCreatedAt(t time.Time) Option {
	return func(o *options) {
		o.createdAt = t
	}
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func buildOptions(opts []Option) options {
	o := options{createdAt: time.Now().UTC()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
