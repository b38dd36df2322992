// Package slug builds ASCII identifiers from free text.
//
// Accented Latin letters are reduced to their base letter through Unicode
// normalization (golang.org/x/text), a few ligatures are spelled out, and any
// other run of characters becomes a single separator:
//
//	slug.Make("Café Wi-Fi (2nd floor)")          // "cafe-wi-fi-2nd-floor"
//	slug.Make("Straße", slug.Separator("_"))     // "strasse"
//	slug.Make("Long name here", slug.MaxLength(8)) // "long-nam"
//
// Output only ever contains [a-zA-Z0-9] and the separator, which makes it safe
// as a file name component.
package slug
