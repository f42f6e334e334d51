package validation

import "regexp"

// Catalog resolves a message key to display text in a single locale.
type Catalog interface {
	Message(key string, args ...string) string
}

// Messages is a flat key -> template catalog. Templates may reference
// arguments as %{name}; args are given as name, value pairs.
type Messages map[string]string

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

func (m Messages) Message(key string, args ...string) string {
	tmpl, ok := m[key]
	if !ok {
		return key
	}
	if len(args) < 2 {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

func RequiredKey(field Name) string {
	return "validation.required." + string(field)
}

func InvalidKey(field Name) string {
	return "validation.invalid." + string(field)
}
