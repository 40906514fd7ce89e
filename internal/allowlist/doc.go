// Package allowlist loads the optional venue allowlist.
//
// The allowlist is a local JSON array of venue names. Absence or any read
// or parse failure degrades to "no filtering" with a warning, prioritizing
// availability of the published listing over strict correctness of the
// filter file.
package allowlist
