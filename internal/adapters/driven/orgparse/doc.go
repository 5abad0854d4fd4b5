// Package orgparse extracts litdb link targets from Org-mode text.
//
// It is deliberately not a full Org parser. The only structure that
// matters here is the litdb: link protocol, in bracket or plain form,
// plus enough block awareness to ignore links quoted inside source
// and example blocks. Regular expressions cover that comfortably.
package orgparse
