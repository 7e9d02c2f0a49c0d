// Package markdown implements the recipe content source: filesystem
// discovery of Markdown recipe files, frontmatter metadata extraction,
// section splitting, and HTML rendering of the description body. It feeds
// the parsers in the recipe package and is the only part of the toolkit
// that performs I/O.
package markdown
