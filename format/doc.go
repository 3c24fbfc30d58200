// Package format names the document encodings understood by the parse and
// encode packages.
//
// # Related Packages
//
//   - github.com/oscarotero/designtokens/parse - Parse text to IR
//   - github.com/oscarotero/designtokens/encode - Encode IR to text
package format
