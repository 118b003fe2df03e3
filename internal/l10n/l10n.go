// Package l10n translates user-facing messages through the gettext catalog
// of the user's locale. Untranslated messages pass through unchanged.
package l10n

import (
	"fmt"

	"github.com/snapcore/go-gettext"
)

// Domain is the gettext text domain of the application.
const Domain = "myproject"

var locale gettext.Catalog

func init() {
	domain := gettext.TextDomain{Name: Domain}
	locale = domain.UserLocale()
}

// T localizes str and formats it with vars, if any.
func T(str string, vars ...interface{}) string {
	translation := locale.Gettext(str)
	if len(vars) > 0 {
		translation = fmt.Sprintf(translation, vars...)
	}
	return translation
}

// TN localizes a message with singular and plural forms selected by n.
func TN(singular, plural string, n uint32, vars ...interface{}) string {
	translation := locale.NGettext(singular, plural, n)
	if len(vars) > 0 {
		translation = fmt.Sprintf(translation, vars...)
	}
	return translation
}
