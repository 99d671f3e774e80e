// Package naming provides file naming rules.
//
// These rules check that file names follow the Angular style guide:
//
//   - naming-suffix: files under a role directory carry the role's suffix
//   - page-naming: routed pages are named <feature>-page.component
//   - file-kebab-case: file names are lower kebab-case
package naming
