// Package logtail reads the tail of the showroom log and formats its JSON
// entries for a terminal.
//
// Read and Tail keep a ring of the newest lines while scanning, so memory is
// bounded by the number of lines requested rather than the file size. A
// missing file is not an error.
//
// Parse decodes one line written by the zap production encoder. Format turns
// it into a single readable line:
//
//	10:00:00.000 INFO  [ui] platform switched platform=native
//
// Lines that are not JSON are returned unchanged.
package logtail
