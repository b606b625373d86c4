package field

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9\s\-\(\)\.]{7,20}$`)
)

// textField accepts nil or any string. An optional format check runs on
// non-empty strings; the empty string clears the cell.
type textField struct {
	typ          Type
	typeReason   Reason
	format       func(string) bool
	formatReason Reason
}

func (f textField) Type() Type { return f.typ }

func (f textField) Validate(value any, field Descriptor, extra Extra) error {
	if skipNull(value) {
		return nil
	}
	s, ok := asString(value)
	rules := []rule{typeRule(f.typeReason, func() bool { return ok })}
	if f.format != nil {
		rules = append(rules, valueRule(f.formatReason, func() bool {
			return s == "" || f.format(s)
		}))
	}
	return apply(field, extra, rules...)
}

func TextField() Validator {
	return textField{typ: TypeText, typeReason: ReasonTextTypeError}
}

// SingleTextField accepts strings without line breaks.
func SingleTextField() Validator {
	return textField{
		typ:          TypeSingleText,
		typeReason:   ReasonSingleTextTypeError,
		format:       func(s string) bool { return !strings.ContainsAny(s, "\r\n") },
		formatReason: ReasonSingleTextLineBreak,
	}
}

func EmailField() Validator {
	return textField{
		typ:          TypeEmail,
		typeReason:   ReasonEmailTypeError,
		format:       isEmail,
		formatReason: ReasonEmailFormatError,
	}
}

func URLField() Validator {
	return textField{
		typ:          TypeURL,
		typeReason:   ReasonURLTypeError,
		format:       isURL,
		formatReason: ReasonURLFormatError,
	}
}

func PhoneField() Validator {
	return textField{
		typ:          TypePhone,
		typeReason:   ReasonPhoneTypeError,
		format:       phoneRegex.MatchString,
		formatReason: ReasonPhoneFormatError,
	}
}

// isEmail requires a bare RFC 5322 address (no display name) that also
// matches the common web form local@domain.tld.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	return emailRegex.MatchString(s)
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
