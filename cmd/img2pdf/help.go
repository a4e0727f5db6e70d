package main

import (
	"fmt"
	"io"
)

const usageText = `img2pdf - compose images into PDF documents

Usage:
  img2pdf <command> [flags] [arguments]

Commands:
  convert   Convert images (file, comma list, or directory) into a PDF
  merge     Concatenate several PDF files into one
  decrypt   Remove password protection from a PDF
  version   Print the version
  help      Show this help

Run 'img2pdf convert --help' for the full flag list.

Examples:
  img2pdf convert scans/ out.pdf
  img2pdf convert -P LETTER -m 15 a.jpg,b.png out.pdf
  img2pdf convert --per-image-rotation rotations.csv --streaming scans/ out.pdf
  img2pdf merge a.pdf,b.pdf combined.pdf
  img2pdf decrypt -p secret locked.pdf open.pdf
`

// printUsage writes the top-level help text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
