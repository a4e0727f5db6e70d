package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrMergePDF signals a failure while merging PDF documents.
var ErrMergePDF = errors.New("failed to merge PDFs")

// runMerge concatenates several PDF files into one. Inputs are given as a
// comma-separated list followed by the output path.
func runMerge(args []string, stdout, stderr *os.File) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: usage: img2pdf merge <a.pdf,b.pdf,...> <output.pdf>", ErrMissingArgs)
	}

	var inputs []string
	for _, part := range strings.Split(args[0], ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, err := os.Stat(part); err != nil {
			return fmt.Errorf("%w: %v", ErrMergePDF, err)
		}
		inputs = append(inputs, part)
	}
	if len(inputs) < 2 {
		return fmt.Errorf("%w: need at least two input PDFs", ErrMissingArgs)
	}
	output := args[1]

	conf := model.NewDefaultConfiguration()
	if err := api.MergeCreateFile(inputs, output, false, conf); err != nil {
		return fmt.Errorf("%w: %v", ErrMergePDF, err)
	}

	fmt.Fprintf(stdout, "Merged %d PDFs into %s\n", len(inputs), output)
	return nil
}
