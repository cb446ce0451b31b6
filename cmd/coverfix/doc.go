// Command coverfix normalizes the embedded cover art of a music folder.
//
// Usage:
//
//	coverfix run <folder> [--workers N] [--size PX] [--playlist] [--no-log]
//	coverfix inspect <folder>
//	coverfix config init [path]
//	coverfix config validate <path>
//
// Every audio file named "Artist - Title.mp3" ends up with a 400x400 JPEG
// front cover: oversized art is scaled down, undersized or missing art is
// fetched from iTunes. Files that look like the same recording are listed
// as duplicate candidates. For an interactive view use coverfix-tui.
package main
