package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrDecryptPDF signals a failure while removing PDF encryption.
var ErrDecryptPDF = errors.New("failed to decrypt PDF")

// runDecrypt removes password protection from a PDF file.
func runDecrypt(args []string, stdout, stderr *os.File) error {
	var password string
	fs := flag.NewFlagSet("decrypt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&password, "password", "p", "", "user or owner password of the input PDF")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	positional := fs.Args()
	if len(positional) < 2 {
		return fmt.Errorf("%w: usage: img2pdf decrypt -p <password> <input.pdf> <output.pdf>", ErrMissingArgs)
	}
	if password == "" {
		return fmt.Errorf("%w: use --password", ErrMissingPassword)
	}
	input, output := positional[0], positional[1]

	conf := model.NewDefaultConfiguration()
	conf.UserPW = password
	conf.OwnerPW = password
	if err := api.DecryptFile(input, output, conf); err != nil {
		return fmt.Errorf("%w: %v", ErrDecryptPDF, err)
	}

	fmt.Fprintf(stdout, "Decrypted %s into %s\n", input, output)
	return nil
}
