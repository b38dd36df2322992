package payload

// Option tunes URI-based encoders.
type Option func(*options)

type options struct {
	percentEncode bool
}

// WithPercentEncoding percent-encodes free text (email subject and body, SMS
// message) instead of embedding it raw. Raw text containing '&', ':', '#' or
// line breaks can otherwise be misread by scanner apps.
func WithPercentEncoding() Option {
	return func(o *options) { o.percentEncode = true }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// text returns s ready to embed, honouring the encoding option.
func (o options) text(s string) string {
	if o.percentEncode {
		return percentEncode(s)
	}
	return s
}
