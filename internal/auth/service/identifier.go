package service

import (
	"strings"

	"github.com/AnthoniusHendriyanto/chat-login/internal/auth/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ClassifyIdentifier decides once whether the submitted login name is a
// syntactically valid email address. Anything else, including the empty
// string, is treated as a username.
func ClassifyIdentifier(raw string) domain.Identifier {
	if isEmail(raw) {
		return domain.EmailIdentifier(raw)
	}
	return domain.UsernameIdentifier(raw)
}

// isEmail accepts what the email tag accepts plus single-label domains such
// as user@localhost, which the tag rejects for lacking a dot.
func isEmail(raw string) bool {
	if raw == "" {
		return false
	}
	if validate.Var(raw, "email") == nil {
		return true
	}

	at := strings.LastIndexByte(raw, '@')
	if at <= 0 {
		return false
	}
	local, host := raw[:at], raw[at+1:]
	if strings.Contains(host, ".") || validate.Var(host, "hostname_rfc1123") != nil {
		return false
	}
	// Check the local part under the same rules with a dotted stand-in host.
	return validate.Var(local+"@"+host+".invalid", "email") == nil
}
