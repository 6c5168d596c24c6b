package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// defaultPageSize is used when the user just presses Enter at the page
// size prompt or types something unusable.
const defaultPageSize = 10

// choosePageSize prompts for one of the list page sizes. 0 means "all".
func choosePageSize(reader *bufio.Reader, w io.Writer) int {
	answer, err := getSimpleText(reader, "Page size (5, 10, 25, all)", w)
	if err != nil {
		return defaultPageSize
	}
	if answer == "all" {
		return 0
	}
	switch n, err := strconv.Atoi(answer); {
	case err != nil:
		return defaultPageSize
	case n == 5 || n == 10 || n == 25:
		return n
	default:
		return defaultPageSize
	}
}

// pageBounds splits total items into [from, to) ranges of the given size.
// size <= 0 yields a single page covering everything.
func pageBounds(total, size int) [][2]int {
	if total == 0 {
		return nil
	}
	if size <= 0 || size >= total {
		return [][2]int{{0, total}}
	}
	var bounds [][2]int
	for from := 0; from < total; from += size {
		to := from + size
		if to > total {
			to = total
		}
		bounds = append(bounds, [2]int{from, to})
	}
	return bounds
}

// showPaged renders total items page by page, prompting between pages.
// Any answer other than Enter stops the listing.
func showPaged(reader *bufio.Reader, w io.Writer, total, size int, render func(from, to int)) {
	bounds := pageBounds(total, size)
	for i, b := range bounds {
		render(b[0], b[1])
		if i == len(bounds)-1 {
			break
		}
		fmt.Fprintf(w, "-- page %d/%d --\n", i+1, len(bounds))
		answer, err := getSimpleText(reader, "Enter for next page, q to stop", w)
		if err != nil || answer != "" {
			return
		}
	}
}
