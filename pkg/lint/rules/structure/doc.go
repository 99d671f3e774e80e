// Package structure provides folder organisation rules.
//
//   - folder-responsibility: core/ holds singletons, shared/ holds reusable
//     declarables, and neither holds the other's files
package structure
